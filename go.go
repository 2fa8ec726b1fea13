package main

import (
	"flag"
	"fmt"
	"forwardlist/job"
	"forwardlist/logger"
	"forwardlist/server"
	"github.com/gin-gonic/gin"
	"github.com/mitchellh/go-homedir"
	"os"
)

func main() {
	var mode string // running mode
	var scriptPath string
	var debug bool
	var ip string
	var port int
	flag.StringVar(&mode, "m", "run", "[run] a script file or [serve] the http api.")
	flag.StringVar(&scriptPath, "s", "", "script file path.required for run mode.")
	flag.BoolVar(&debug, "d", false, "print console output without log prefixes.")
	flag.StringVar(&ip, "ip", "", "bind ip address.default is empty for all address.")
	flag.IntVar(&port, "p", 8080, "bind port")
	flag.Parse()

	switch mode {
	case "run":
		if scriptPath == "" {
			logger.Fatal("script path is required.")
		}
		if err := runFile(scriptPath, debug); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
	case "serve":
		r := gin.Default()
		server.Start(r)
		err := r.Run(fmt.Sprintf("%s:%d", ip, port))
		if err != nil {
			logger.Error(err)
			os.Exit(1)
		}
	default:
		logger.Fatal(fmt.Sprintf("unknown mode: %s", mode))
	}
}

func runFile(path string, debug bool) error {
	p, err := homedir.Expand(path)
	if err != nil {
		return err
	}
	sc, err := os.ReadFile(p)
	if err != nil {
		return fmt.Errorf("read script: %w", err)
	}
	j := job.CreateJsJob(string(sc))
	logger.Info(fmt.Sprintf("running %s as job %s", p, j.JobId))
	if debug {
		return j.RunForDebug(os.Stdout)
	}
	return j.Run()
}
