package version

// Library is the released version of cassbridge. It is stamped into log entries and the metrics resource.
const Library = "v0.1.0"
