package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strconv"

	"github.com/auyjaniiz14/bmsconv"
)

func main() {
	tablePath := flag.String("table", "", "optional YAML rule table (overrides/extends the built-in rules)")
	verbose := flag.Bool("v", false, "debug logging")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "usage: %s [flags] list | encode <signal> <value> | decode <signal> <raw>\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	if err := run(logger, *tablePath, flag.Args()); err != nil {
		logger.Error("bmsconv failed", "error", err)
		os.Exit(1)
	}
}

func run(logger *slog.Logger, tablePath string, args []string) error {
	table := bmsconv.DefaultTable()
	if tablePath != "" {
		var err error
		if table, err = bmsconv.LoadTableFile(tablePath); err != nil {
			return err
		}
		logger.Debug("loaded rule table", "path", tablePath, "rules", table.Len())
	}
	if len(args) == 0 {
		return fmt.Errorf("missing command")
	}
	switch args[0] {
	case "list":
		for _, r := range table.Rules() {
			fmt.Println(r)
		}
		return nil
	case "encode", "decode":
		if len(args) != 3 {
			return fmt.Errorf("%s needs <signal> <value>", args[0])
		}
		signal := bmsconv.SignalName(args[1])
		value, err := strconv.ParseUint(args[2], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid value %q: %w", args[2], err)
		}
		if args[0] == "encode" {
			raw, err := table.Encode(signal, value)
			if err != nil {
				return err
			}
			logger.Debug("encoded", "signal", signal, "value", value, "raw", raw)
			fmt.Println(raw)
			return nil
		}
		eng, err := table.Decode(signal, value)
		if err != nil {
			return err
		}
		logger.Debug("decoded", "signal", signal, "raw", value, "value", eng)
		fmt.Println(strconv.FormatFloat(eng, 'f', -1, 64))
		return nil
	default:
		return fmt.Errorf("unknown command %q", args[0])
	}
}
