package main

import (
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/cenkalti/backoff"
	"github.com/skratchdot/open-golang/open"

	"github.com/bytearena/visgraph/common/config"
	"github.com/bytearena/visgraph/common/utils"
	"github.com/bytearena/visgraph/vizserver"
)

func main() {
	conf, err := config.Get()
	if err != nil {
		utils.FailWith(utils.Chain("Could not load configuration", err))
	}

	addr := flag.String("addr", conf.Addr, "Address the viz server listens on")
	workers := flag.Int("workers", conf.Workers, "Number of vertices swept at once per graph")
	openBrowser := flag.Bool("open", false, "Open the viz in a browser once the server is up")

	flag.Parse()

	conf.Addr = *addr
	conf.Workers = *workers

	if err := conf.Validate(); err != nil {
		utils.FailWith(utils.Chain("Invalid configuration", err))
	}

	log.Println("Visgraph Viz Server " + utils.GetVersion())

	vizservice := vizserver.NewVizService(conf)
	defer vizservice.Close()

	serverErrors := make(chan error, 1)
	go func() {
		serverErrors <- vizservice.ListenAndServe()
	}()

	if *openBrowser {
		url := localURL(conf.Addr)

		if err := waitHealthy(url+"health", 10*time.Second); err != nil {
			utils.WarnWith(utils.Chain("The viz server did not come up", err))
		} else if err := open.Run(url); err != nil {
			utils.WarnWith(utils.Chain("Could not open a browser", err))
		}
	}

	signals := make(chan os.Signal, 1)
	signal.Notify(signals, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		vizservice.Close()
		utils.FailWith(utils.Chain("The viz server stopped", err))
	case <-signals:
		utils.Debug("sighandler", "RECEIVED SHUTDOWN SIGNAL; closing.")
	}
}

func localURL(addr string) string {
	if strings.HasPrefix(addr, ":") {
		addr = "localhost" + addr
	}

	return "http://" + addr + "/"
}

func waitHealthy(url string, timeout time.Duration) error {
	policy := backoff.NewExponentialBackOff()
	policy.MaxElapsedTime = timeout

	return backoff.Retry(func() error {
		res, err := http.Get(url)
		if err != nil {
			return err
		}
		defer res.Body.Close()

		if res.StatusCode != http.StatusOK {
			return fmt.Errorf("health check returned %d", res.StatusCode)
		}

		return nil
	}, policy)
}
