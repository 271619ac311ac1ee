package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/AnilRedshift/greeter_go/internal/api/common"
	"github.com/AnilRedshift/greeter_go/internal/server"
	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"
)

func main() {
	app := &cli.App{
		Name:   "greeter",
		Usage:  "Answers GET / with a greeting on $PORT (default 4000)",
		Action: serve,
		Flags: []cli.Flag{
			&cli.BoolFlag{Name: "verbose"},
		},
		Before: onBefore,
	}
	err := app.Run(os.Args)
	if err != nil {
		logrus.Fatal(err)
	}
}

func onBefore(c *cli.Context) error {
	logrus.SetOutput(os.Stdout)
	if c.Bool("verbose") {
		logrus.SetLevel(logrus.DebugLevel)
	}
	return nil
}

func serve(c *cli.Context) error {
	ctx, stop := signal.NotifyContext(c.Context, os.Interrupt, syscall.SIGTERM)
	defer stop()

	greeter := server.New(common.NewConfig(), logrus.StandardLogger())
	done, err := greeter.Start(ctx)
	if err != nil {
		return err
	}
	return <-done
}
