package main

import (
	"testing"
)

func Test_options_parse(t *testing.T) {
	type fields struct {
		logfile  string
		output   string
		loglevel string
		summary  bool
	}
	tests := []struct {
		name    string
		fields  fields
		wantErr bool
	}{
		{name: "working", fields: fields{logfile: "file", loglevel: "info"}, wantErr: false},
		{name: "stdout output is fine", fields: fields{logfile: "file"}, wantErr: false},
		{name: "no logfile", fields: fields{output: "out.csv"}, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			o := &options{
				logfile:  tt.fields.logfile,
				output:   tt.fields.output,
				loglevel: tt.fields.loglevel,
				summary:  tt.fields.summary,
			}
			if err := o.parse(); (err != nil) != tt.wantErr {
				t.Errorf("options.parse() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func Test_newLogger(t *testing.T) {
	tests := []struct {
		name     string
		loglevel string
		wantErr  bool
	}{
		{name: "info", loglevel: "info", wantErr: false},
		{name: "debug", loglevel: "debug", wantErr: false},
		{name: "err alias", loglevel: "err", wantErr: false},
		{name: "unknown", loglevel: "loud", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := newLogger(tt.loglevel); (err != nil) != tt.wantErr {
				t.Errorf("newLogger() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
