package config

// Property describes one configuration key: its name in the properties
// resource, its environment variable and the compiled-in default.
type Property struct {
	// PropertyName is the key in the properties resource. For per-logger
	// properties it is a prefix completed by the logger name.
	PropertyName string
	// VariableName is the environment variable. For per-logger
	// properties it is a prefix completed by the normalized logger name.
	VariableName string
	// DefaultValue is used when neither source sets the key.
	DefaultValue string
	// HasDefault distinguishes an empty default from no default.
	HasDefault bool
}

func property(propertyName, variableName string) Property {
	return Property{PropertyName: propertyName, VariableName: variableName}
}

func propertyWithDefault(propertyName, variableName, defaultValue string) Property {
	return Property{
		PropertyName: propertyName,
		VariableName: variableName,
		DefaultValue: defaultValue,
		HasDefault:   true,
	}
}

var (
	// DateTimeFormat is a SimpleDateFormat-style pattern. When unset or
	// invalid, timestamps are milliseconds since start up.
	DateTimeFormat = property("dateTimeFormat", "LOG_DATE_TIME_FORMAT")
	// DefaultLogLevel is the level expression of loggers without their
	// own configuration.
	DefaultLogLevel = propertyWithDefault("defaultLogLevel", "LOG_DEFAULT_LEVEL", "INFO")
	// LevelInBrackets prints the level as "[INFO]".
	LevelInBrackets = propertyWithDefault("levelInBrackets", "LOG_LEVEL_IN_BRACKETS", "false")
	// LogLevel is the per-logger level expression: log.a.b.c or LOG_A_B_C.
	LogLevel = property("log.", "LOG_")
	// LogLevelSeparator is the regular expression between level rules.
	LogLevelSeparator = propertyWithDefault("logLevelSeparator", "LOG_LEVEL_SEPARATOR", ",")
	// MarkerSeparator is the regular expression between marker names.
	MarkerSeparator = propertyWithDefault("markerSeparator", "LOG_MARKER_SEPARATOR", ":")
	// RequestID is the MDC key of the request id printed with each line.
	RequestID = propertyWithDefault("requestId", "LOG_AWS_REQUEST_ID", "AWS_REQUEST_ID")
	// ShowDateTime includes the timestamp in output.
	ShowDateTime = propertyWithDefault("showDateTime", "LOG_SHOW_DATE_TIME", "false")
	// ShowLogName includes the full logger name in output.
	ShowLogName = propertyWithDefault("showLogName", "LOG_SHOW_NAME", "true")
	// ShowShortLogName includes the last segment of the logger name; it
	// takes precedence over ShowLogName.
	ShowShortLogName = propertyWithDefault("showShortLogName", "LOG_SHOW_SHORT_NAME", "false")
	// ShowThreadID includes the goroutine id.
	ShowThreadID = propertyWithDefault("showThreadId", "LOG_SHOW_THREAD_ID", "false")
	// ShowThreadName includes the goroutine name.
	ShowThreadName = propertyWithDefault("showThreadName", "LOG_SHOW_THREAD_NAME", "false")
)

// AllProperties returns every global property, in documentation order.
func AllProperties() []Property {
	return []Property{
		DateTimeFormat,
		DefaultLogLevel,
		LevelInBrackets,
		LogLevelSeparator,
		MarkerSeparator,
		RequestID,
		ShowDateTime,
		ShowLogName,
		ShowShortLogName,
		ShowThreadID,
		ShowThreadName,
	}
}
