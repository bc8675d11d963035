package main

import "errors"

type options struct {
	logfile  string
	output   string
	loglevel string
	summary  bool
}

// parse ensures that no required option has been omitted
func (o *options) parse() error {
	if o.logfile == "" {
		return errors.New("no slow query log file provided")
	}
	return nil
}
