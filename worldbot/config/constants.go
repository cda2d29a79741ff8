package config

import "time"

// UI and display constants
const (
	NationsPerPage  = 10
	DefaultPageSize = 10
	MaxPageSize     = 25

	ErrorColor   = 0xFF0000
	SuccessColor = 0x00FF00
	InfoColor    = 0x0099FF
	WarningColor = 0xFFAA00

	EmbedDefaultColor = 0x2B2D31
)

// Database and performance constants
const (
	DefaultQueryTimeout     = 30 * time.Second
	CommandExecutionTimeout = 10 * time.Second
	NetworkDialTimeout      = 5 * time.Second
	NetworkKeepAlive        = 30 * time.Second

	CacheExpiration = 5 * time.Minute
	CacheSize       = 512

	MaxRetries = 3
)

// Action bounds enforced before any state change
const (
	MinProduceAmount    = 1
	MaxProduceAmount    = 1000
	MinBuildCount       = 1
	MaxBuildCount       = 1000
	MaxTaxRate          = 50
	MinNationNameLength = 2
)

// Search constants
const (
	MaxSearchResults     = 25
	SearchScoreThreshold = 0.1
)
