package config

import "strings"

// AppVersion is the version of the service.
var AppVersion string

// AppName is the name of the service.
const AppName = "Paperdesk"

// LogWinSubDir is the sub directory for the log files on windows.
var LogWinSubDir = AppName

// LogSubDir is the sub directory for the log files.
var LogSubDir = "." + strings.ToLower(AppName)

// LogExt is the extension for the log files.
var LogExt = ".log"

// ConfigFileName is the name of the YAML configuration file inside the
// application directory.
const ConfigFileName = "config.yaml"

// DownloadSubDir is the default downloads directory inside the application
// directory, used when the config does not override it.
const DownloadSubDir = "downloads"
