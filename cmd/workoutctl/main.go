// Command workoutctl inspects workout libraries, rescales workouts and
// manages recorded training files without the desktop UI.
package main

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/ytget/workout-viewer/internal/config"
)

const usage = `usage: workoutctl <command> [flags]

commands:
  list     list workouts (-sort, -min, -max in seconds)
  scale    rescale a workout (-name or -id, -target seconds or -minutes, -ftp)
  decode   decode an overlay workout string
  files    list recorded training files
  export   write a training file as GPX (-id, -dir)
`

func main() {
	env, err := config.LoadEnvironment()
	if err != nil {
		log.Fatalf("failed to read environment: %v", err)
	}
	os.Exit(run(os.Args[1:], env, os.Stdout, os.Stderr))
}

// run executes one subcommand and returns the process exit code
func run(args []string, env *config.Environment, stdout, stderr io.Writer) int {
	if len(args) == 0 {
		fmt.Fprint(stderr, usage)
		return 2
	}

	c := &cli{env: env, stdout: stdout, stderr: stderr}
	var err error
	switch args[0] {
	case "list":
		err = c.list(args[1:])
	case "scale":
		err = c.scale(args[1:])
	case "decode":
		err = c.decode(args[1:])
	case "files":
		err = c.files(args[1:])
	case "export":
		err = c.export(args[1:])
	case "help", "-h", "--help":
		fmt.Fprint(stdout, usage)
		return 0
	default:
		fmt.Fprintf(stderr, "unknown command %q\n\n%s", args[0], usage)
		return 2
	}

	if err != nil {
		fmt.Fprintf(stderr, "workoutctl %s: %v\n", args[0], err)
		return 1
	}
	return 0
}
