package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/iov-one/cattery"
	catteryd "github.com/iov-one/cattery/cmd/catteryd/app"
	"github.com/iov-one/cattery/commands"
	"github.com/iov-one/cattery/commands/server"
)

var (
	flagHome = "home"
	varHome  *string
)

func init() {
	defaultHome := filepath.Join(os.ExpandEnv("$HOME"), ".catteryd")
	varHome = flag.String(flagHome, defaultHome, "directory to store files under")
}

func helpMessage() {
	fmt.Println("catteryd")
	fmt.Println("          Kitty registry ABCI Application")
	fmt.Println("")
	fmt.Println("help      Print this message")
	fmt.Println("init      Initialize app options in genesis file")
	fmt.Println("start     Run the abci server")
	fmt.Println("validate  Load the app_state of given genesis files")
	fmt.Println("testgen   Write example encodings into a directory")
	fmt.Println("version   Print the app version")
	fmt.Println(`
  -home string
        directory to store files under (default "$HOME/.catteryd")

start flags, also read from CATTERY_* variables and catteryd.toml:
  -bind string          address server listens on
  -debug                call stack returned on error
  -log_level string     one of debug, info, warn, error
  -nats_url string      NATS server receiving block events
  -nats_subject string  NATS subject prefix of published events`)
}

func main() {
	flag.Parse()
	if flag.NArg() == 0 {
		fmt.Println("Missing command:")
		helpMessage()
		os.Exit(1)
	}

	cmd := flag.Arg(0)
	rest := flag.Args()[1:]

	var err error
	switch cmd {
	case "help":
		helpMessage()
	case "init":
		err = initCmd(rest)
	case "start":
		err = startCmd(rest)
	case "validate":
		err = server.ValidateGenesis(catteryd.Initializers(), rest)
	case "testgen":
		err = commands.TestGenCmd(catteryd.Examples(), rest)
	case "version":
		fmt.Println(cattery.Version())
	default:
		fmt.Printf("Unknown command: %s\n", cmd)
		helpMessage()
		os.Exit(1)
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %+v\n", err)
		os.Exit(1)
	}
}

func initCmd(args []string) error {
	logger, err := server.NewLogger("info", false)
	if err != nil {
		return err
	}
	return server.InitCmd(catteryd.GenInitOptions, logger, *varHome, args)
}

func startCmd(args []string) error {
	cfg, err := server.LoadConfig(*varHome, args)
	if err != nil {
		return err
	}
	logger, err := server.NewLogger(cfg.LogLevel, cfg.Debug)
	if err != nil {
		return err
	}
	logger = logger.With("module", "catteryd")
	return server.StartCmd(catteryd.GenerateApp, logger, cfg)
}
