package config

import "time"

// Base application details
const AppName = "marka"
const ConfigDirName = "marka"
const DefaultConfigFileName = "config.toml" // Main config file
const DefaultLogFileName = "marka.log"

// UI Layout
const StatusBarHeight = 1

// Status Bar
const MessageTimeout = 4 * time.Second

// Defaults applied by NewDefaultConfig
const DefaultTabWidth = 4
const DefaultScrollOff = 3
const DefaultDoubleClickMs = 400
const DefaultClickRadius = 2
