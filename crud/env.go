package crud

import (
	"os"
	"strconv"
)

// Environment variables recognized by FromEnv. Flag variables take any
// value strconv.ParseBool accepts; list variables are comma-separated
// pattern lists.
const (
	EnvCreate     = "AUTOTOOL_CRUD_CREATE"
	EnvCreateList = "AUTOTOOL_CRUD_CREATE_LIST"
	EnvRead       = "AUTOTOOL_CRUD_READ"
	EnvReadList   = "AUTOTOOL_CRUD_READ_LIST"
	EnvUpdate     = "AUTOTOOL_CRUD_UPDATE"
	EnvUpdateList = "AUTOTOOL_CRUD_UPDATE_LIST"
	EnvDelete     = "AUTOTOOL_CRUD_DELETE"
	EnvDeleteList = "AUTOTOOL_CRUD_DELETE_LIST"
)

// FromEnv returns options derived from the AUTOTOOL_CRUD_* environment
// variables. Unset variables contribute nothing, so New(FromEnv()...) with
// an empty environment is identical to New(). Unparseable flag values are
// ignored rather than treated as configuration errors; rule lists are still
// validated by New.
func FromEnv() []Option {
	var opts []Option

	flags := []struct {
		key  string
		verb Verb
	}{
		{EnvCreate, VerbCreate},
		{EnvRead, VerbRead},
		{EnvUpdate, VerbUpdate},
		{EnvDelete, VerbDelete},
	}
	for _, f := range flags {
		if v, ok := os.LookupEnv(f.key); ok {
			if enabled, err := strconv.ParseBool(v); err == nil {
				opts = append(opts, WithVerb(f.verb, enabled))
			}
		}
	}

	lists := []struct {
		key  string
		verb Verb
	}{
		{EnvCreateList, VerbCreate},
		{EnvReadList, VerbRead},
		{EnvUpdateList, VerbUpdate},
		{EnvDeleteList, VerbDelete},
	}
	for _, l := range lists {
		if v, ok := os.LookupEnv(l.key); ok && v != "" {
			opts = append(opts, WithVerbRules(l.verb, v))
		}
	}

	return opts
}
