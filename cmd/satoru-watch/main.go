package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"
)

// Supported subcommands:
// - watch:  Print document updates as they arrive
// - upload: Upload a PDF and wait for its study material
// - stats:  Print document totals

func main() {
	watchCmd := flag.NewFlagSet("watch", flag.ExitOnError)
	uploadCmd := flag.NewFlagSet("upload", flag.ExitOnError)
	statsCmd := flag.NewFlagSet("stats", flag.ExitOnError)

	clientCfg := loadClientConfig()
	watchConn := registerConnFlags(watchCmd, clientCfg)
	uploadConn := registerConnFlags(uploadCmd, clientCfg)
	statsConn := registerConnFlags(statsCmd, clientCfg)

	uploadTitle := uploadCmd.String("title", "", "Document title (defaults to the file name)")
	uploadTimeout := uploadCmd.Duration("timeout", 5*time.Minute, "How long to wait for processing")

	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	var err error
	switch os.Args[1] {
	case "watch":
		_ = watchCmd.Parse(os.Args[2:])
		err = runWatch(ctx, watchConn)
	case "upload":
		_ = uploadCmd.Parse(os.Args[2:])
		if uploadCmd.NArg() != 1 {
			fmt.Fprintln(os.Stderr, "Usage: satoru-watch upload [flags] <file.pdf>")
			os.Exit(1)
		}
		err = runUpload(ctx, uploadConn, uploadCmd.Arg(0), *uploadTitle, *uploadTimeout)
	case "stats":
		_ = statsCmd.Parse(os.Args[2:])
		err = runStats(ctx, statsConn)
	default:
		printUsage()
		os.Exit(1)
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(`Usage: satoru-watch <command> [flags]

Commands:
  watch   Sign in and print document updates until interrupted
  upload  Upload a PDF and print its summary and flashcards when ready
  stats   Print document totals

Common flags:
  -api        API base URL (env SATORU_API_URL, then client.baseUrl in config.yaml)
  -email      Account email (env SATORU_EMAIL)
  -password   Account password (env SATORU_PASSWORD)
  -reconnect  Delay between realtime reconnect attempts (default 3s)
  -v          Log client activity to stderr`)
}
