package soundboard

// Logger receives the driver's diagnostics. Debug carries per-exchange
// detail such as volume walking and banner lines, Info the board-level
// events (a reset, a missing banner tag, a substituted track), and Error
// the failures the driver absorbs instead of returning, like a store
// write that did not stick.
//
// Keys and values alternate in keysAndValues. A nil Logger silences the
// driver; see WithLogger.
//
//	type printLogger struct{}
//
//	func (printLogger) Debug(msg string, kv ...interface{}) {}
//	func (printLogger) Info(msg string, kv ...interface{})  { log.Println(msg, kv) }
//	func (printLogger) Error(msg string, kv ...interface{}) { log.Println(msg, kv) }
//
//	drv, err := soundboard.New(port, soundboard.WithLogger(printLogger{}))
type Logger interface {
	Debug(msg string, keysAndValues ...interface{})
	Info(msg string, keysAndValues ...interface{})
	Error(msg string, keysAndValues ...interface{})
}
