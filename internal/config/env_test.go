package config

import "testing"

func TestParseEnvironment(t *testing.T) {
	env, err := ParseEnvironment(map[string]string{
		"WORKOUT_VIEWER_DB_PATH":       "/data/db",
		"WORKOUT_VIEWER_WORKOUTS_FILE": "/data/workouts.json",
		"WORKOUT_VIEWER_FTP":           "275",
	})
	if err != nil {
		t.Fatalf("ParseEnvironment() error = %v", err)
	}

	if env.DBPath != "/data/db" || env.WorkoutsFile != "/data/workouts.json" || env.FTP != 275 {
		t.Errorf("Unexpected environment: %+v", env)
	}
	if env.Debug {
		t.Error("Debug should default to false")
	}
	if env.BinDir != "" {
		t.Errorf("Expected empty bin dir, got %s", env.BinDir)
	}
}

func TestParseEnvironment_InvalidFTP(t *testing.T) {
	if _, err := ParseEnvironment(map[string]string{"WORKOUT_VIEWER_FTP": "fast"}); err == nil {
		t.Error("Expected error for non-numeric FTP")
	}
}

func TestEnvironmentFallbacks(t *testing.T) {
	empty := &Environment{}
	if got := empty.DBPathOr("/default/db"); got != "/default/db" {
		t.Errorf("DBPathOr() = %s, expected fallback", got)
	}
	if got := empty.FTPOr(250); got != 250 {
		t.Errorf("FTPOr() = %d, expected fallback", got)
	}

	set := &Environment{DBPath: "/env/db", BinDir: "/env/bin", WorkoutsFile: "/env/w.json", FTP: 20}
	if got := set.DBPathOr("/default/db"); got != "/env/db" {
		t.Errorf("DBPathOr() = %s, expected override", got)
	}
	if got := set.BinDirOr("/default/bin"); got != "/env/bin" {
		t.Errorf("BinDirOr() = %s, expected override", got)
	}
	if got := set.WorkoutsFileOr("/default/w.json"); got != "/env/w.json" {
		t.Errorf("WorkoutsFileOr() = %s, expected override", got)
	}
	if got := set.FTPOr(250); got != MinFTP {
		t.Errorf("FTPOr() = %d, expected clamped %d", got, MinFTP)
	}
}
