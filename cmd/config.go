package cmd

type Config struct {
	LogLevel          string
	CapabilityTimeout string
}
