package prog

import (
	"flag"

	"src.pless.dev/pkg/config"
)

// FlagSet wraps a [flag.FlagSet] and provides the flags shared by several
// subprograms.
type FlagSet struct {
	*flag.FlagSet
	settings *Settings
	db       *DBPath
	json     *bool
}

// Settings returns the shared settings. They are only filled in after the
// flags are parsed, so subprograms keep the pointer from RegisterFlags and
// read it in Run.
func (fs *FlagSet) Settings() *Settings { return fs.settings }

// DBPath is the -db flag.
type DBPath struct {
	flag     string
	settings *Settings
}

// DB registers the -db flag, if it has not been registered yet.
func (fs *FlagSet) DB() *DBPath {
	if fs.db == nil {
		dp := &DBPath{settings: fs.settings}
		fs.StringVar(&dp.flag, "db", "", "path to the property store")
		fs.db = dp
	}
	return fs.db
}

// Path returns the path of the property store: the -db flag, the db setting
// of the configuration or the default path, whichever is set first.
func (dp *DBPath) Path() (string, error) {
	if dp.flag != "" {
		return dp.flag, nil
	}
	if cfg := dp.settings.Config; cfg != nil && cfg.DB != "" {
		return cfg.DB, nil
	}
	return config.DefaultDBPath()
}

// JSON registers the -json flag, if it has not been registered yet.
func (fs *FlagSet) JSON() *bool {
	if fs.json == nil {
		var json bool
		fs.BoolVar(&json, "json", false,
			"show the output from -buildinfo, -compare or -props in JSON")
		fs.json = &json
	}
	return fs.json
}
