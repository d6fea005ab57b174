//go:build unit

package nilcheck

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type sink interface {
	Write(string)
}

type bufferSink struct{}

func (*bufferSink) Write(string) {}

func TestIsNil(t *testing.T) {
	t.Parallel()

	var typedNil sink = (*bufferSink)(nil)

	tests := []struct {
		name string
		dep  any
		want bool
	}{
		{name: "untyped nil", dep: nil, want: true},
		{name: "nil pointer", dep: (*bufferSink)(nil), want: true},
		{name: "typed nil interface", dep: typedNil, want: true},
		{name: "nil map", dep: map[string]int(nil), want: true},
		{name: "nil slice", dep: []byte(nil), want: true},
		{name: "nil func", dep: (func())(nil), want: true},
		{name: "nil chan", dep: (chan int)(nil), want: true},
		{name: "live pointer", dep: &bufferSink{}, want: false},
		{name: "empty slice", dep: []byte{}, want: false},
		{name: "struct value", dep: bufferSink{}, want: false},
		{name: "zero int", dep: 0, want: false},
		{name: "empty string", dep: "", want: false},
	}

	for _, tt := range tests {
		tt := tt

		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, IsNil(tt.dep))
		})
	}
}
