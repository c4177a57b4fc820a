package settings

type Config struct {
	Queue   Queue   `mapstructure:"queue"`
	Batcher Batcher `mapstructure:"batcher"`
	Logger  Logger  `mapstructure:"logger"`
}

// Queue is the configuration for a ring queue.
// Capacity counts slots; the queue holds Capacity-1 items.
type Queue struct {
	Capacity int `mapstructure:"capacity" validate:"min=2"`
}

// Batcher is the configuration for the striped batcher.
// StripeSize 0 selects the batcher default.
type Batcher struct {
	StripeSize int `mapstructure:"stripe_size" validate:"gte=0,lte=1048576"`
}

// Logger is the configuration for the logger
type Logger struct {
	LogLevel    string `mapstructure:"log_level" validate:"omitempty,oneof=debug info warn error dpanic panic fatal"`
	FileLogName string `mapstructure:"file_log_name"`
	MaxBackups  int    `mapstructure:"max_backups" validate:"gte=0"`
	MaxAge      int    `mapstructure:"max_age" validate:"gte=0"`
	MaxSize     int    `mapstructure:"max_size" validate:"gte=0"`
	Compress    bool   `mapstructure:"compress"`
}

// Default returns a Config usable without any external source.
func Default() Config {
	return Config{
		Queue:   Queue{Capacity: 1024},
		Batcher: Batcher{StripeSize: 512},
		Logger:  Logger{LogLevel: "info", MaxBackups: 3, MaxAge: 28, MaxSize: 100},
	}
}
