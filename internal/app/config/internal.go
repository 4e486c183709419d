package config

type InternalConfig struct {
	App      App
	RabbitMQ AppRabbitMQ
	MongoDB  AppMongoDB
}

type App struct {
	Env                        string
	Port                       string
	Version                    string
	Address                    string
	Timezone                   string
	EndpointPrefix             string
	MaxRequests                int
	ShutdownTimeoutInSeconds   int
	RequestTimeoutInSeconds    int
	BookingLockTimeInSeconds   int
	RateLimiterBlockInSeconds  int
	RequestBodyLimitInMegabyte int
}

type AppRabbitMQ struct {
	NotificationQueue string
	QueueDurable      bool
}

type AppMongoDB struct {
	DbName string
}
