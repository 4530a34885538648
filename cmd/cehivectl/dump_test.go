package main

import (
	"testing"
)

func TestDumpCommand(t *testing.T) {
	tests := []struct {
		name           string
		prefix         string
		valuesOnly     bool
		wantJSON       bool
		wantErr        bool
		wantContain    []string
		wantNotContain []string
	}{
		{
			name:        "dump everything",
			wantContain: []string{"/HKCR/App/Ver 3", `/HKCU/Sys/Name "widget"`},
		},
		{
			name:           "dump with prefix filter",
			prefix:         "/HKCR",
			wantContain:    []string{"/HKCR/App/Ver 3"},
			wantNotContain: []string{"/HKCU", "Sys"},
		},
		{
			name:           "dump values only",
			valuesOnly:     true,
			wantContain:    []string{"3", `"widget"`},
			wantNotContain: []string{"/HKCR", "/HKCU", "App", "Sys"},
		},
		{
			name:        "dump as JSON",
			wantJSON:    true,
			wantContain: []string{"/HKCR/App/Ver", "DWORD", "STRING", "widget"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Reset flags
			quiet = false
			verbose = false
			jsonOut = tt.wantJSON
			dumpPrefix = tt.prefix
			dumpValuesOnly = tt.valuesOnly

			args := []string{writeTestHive(t)}

			output, err := captureOutput(t, func() error {
				return runDump(args)
			})

			if (err != nil) != tt.wantErr {
				t.Errorf("runDump() error = %v, wantErr %v", err, tt.wantErr)
				return
			}

			if tt.wantJSON {
				assertJSON(t, output)
			}

			assertContains(t, output, tt.wantContain)
			assertNotContains(t, output, tt.wantNotContain)
		})
	}
}

func TestDumpCommandFlags(t *testing.T) {
	cmd, _, err := rootCmd.Find([]string{"dump"})
	if err != nil {
		t.Fatalf("dump command not registered: %v", err)
	}
	for _, name := range []string{"prefix", "values-only"} {
		if cmd.Flags().Lookup(name) == nil {
			t.Errorf("dump command has no --%s flag", name)
		}
	}
}

func TestDumpCommandMissingFile(t *testing.T) {
	quiet = false
	verbose = false
	jsonOut = false
	dumpPrefix = ""
	dumpValuesOnly = false

	_, err := captureOutput(t, func() error {
		return runDump([]string{"no-such-file.hv"})
	})
	if err == nil {
		t.Fatal("expected an error for a missing hive file")
	}
}
