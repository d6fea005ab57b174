// Package zap implements the opaquebox log.Logger contract on top of
// go.uber.org/zap.
//
// Install it once at startup so read tracing and release diagnostics land in
// the application's structured logs:
//
//	logger, _, err := zap.New(zap.Config{Environment: zap.EnvironmentProduction})
//	if err != nil {
//		return err
//	}
//	opaquebox.SetLogger(logger)
package zap
