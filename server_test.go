package slow2csv

import "testing"

func Test_parseServerMeta(t *testing.T) {
	tests := []struct {
		name     string
		preamble []string
		refSrv   Server
	}{
		{
			name: "parsable",
			preamble: []string{
				"/opt/bitnami/mariadb/sbin/mysqld, Version: 10.5.9-MariaDB (Source distribution). started with:",
				"Tcp port: 3306  Unix socket: /opt/bitnami/mariadb/tmp/mysql.sock",
				"Time		    Id Command	Argument",
			},
			refSrv: Server{
				Binary:             "/opt/bitnami/mariadb/sbin/mysqld",
				Port:               3306,
				Socket:             "/opt/bitnami/mariadb/tmp/mysql.sock",
				Version:            "10.5.9-MariaDB",
				VersionShort:       "10.5.9",
				VersionDescription: "Source distribution",
			},
		},
		{
			name: "unparsable",
			preamble: []string{
				"Version: 8.0.23 (MySQL Community Server - GPL). started with:",
				"Tcp port: 3306",
				"Time                 Id Command    Argument",
			},
			refSrv: Server{},
		},
		{
			name:     "missing banner",
			preamble: nil,
			refSrv:   Server{},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if srv := parseServerMeta(tt.preamble); srv != tt.refSrv {
				t.Errorf("got = %v, want = %v", srv, tt.refSrv)
			}
		})
	}
}
