package log

type nullLogger struct{}

func (n *nullLogger) Debugf(_ string, _ ...interface{}) {}

func (n *nullLogger) Infof(_ string, _ ...interface{}) {}

func (n *nullLogger) Warnf(_ string, _ ...interface{}) {}

func (n *nullLogger) Errorf(_ string, _ ...interface{}) {}

func (n *nullLogger) Fatalf(_ string, _ ...interface{}) {}

func (n *nullLogger) Debugw(_ string, _ ...interface{}) {}

func (n *nullLogger) Infow(_ string, _ ...interface{}) {}

func (n *nullLogger) Warnw(_ string, _ ...interface{}) {}

func (n *nullLogger) Errorw(_ string, _ ...interface{}) {}

func (n *nullLogger) Debug(_ ...interface{}) {}

func (n *nullLogger) Info(_ ...interface{}) {}

func (n *nullLogger) Warn(_ ...interface{}) {}

func (n *nullLogger) Error(_ ...interface{}) {}

func (n *nullLogger) Sync() {}

var (
	_ Logger = (*nullLogger)(nil)
	_ Logger = (*zapLogger)(nil)
)

func NewNopLogger() Logger {
	return &nullLogger{}
}
