package influxdb

import (
	"fmt"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/bytearena/visgraph/common/utils"
	"github.com/pkg/errors"

	"github.com/influxdata/influxdb/client/v2"
)

const ReportInterval = 5 * time.Second

// Client reports application metrics to InfluxDB. Without INFLUXDB_ADDR
// and INFLUXDB_DB it is a stub printing the metrics as debug lines.
type Client struct {
	isStub bool

	database       string
	appName        string
	influxdbClient client.Client
	tickerChannel  *time.Ticker
}

func createHttpClient(addr string) (client.Client, error) {
	return client.NewHTTPClient(client.HTTPConfig{
		Addr: addr,
	})
}

func NewClient(appName string) (*Client, error) {
	return newClient(appName, os.Getenv("INFLUXDB_ADDR"), os.Getenv("INFLUXDB_DB"))
}

func newClient(appName, influxdbAddr, influxdbDb string) (*Client, error) {
	tickerChannel := time.NewTicker(ReportInterval)

	stubClient := &Client{
		isStub: true,

		tickerChannel: tickerChannel,
		appName:       appName,
	}

	if influxdbAddr == "" && influxdbDb == "" {
		utils.Debug("influxdb", "No client has been configured")
		return stubClient, nil
	}

	influxdbClient, err := createHttpClient(influxdbAddr)
	if err != nil {
		return stubClient, errors.Wrapf(err, "could not create influxdb client for %s", influxdbAddr)
	}

	utils.Debug("influxdb", "Influxdb reporting is enabled")

	return &Client{
		isStub: false,

		database:       influxdbDb,
		influxdbClient: influxdbClient,
		tickerChannel:  tickerChannel,
		appName:        appName,
	}, nil
}

func (c *Client) IsStub() bool {
	return c.isStub
}

func formatFields(fields map[string]interface{}) string {
	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s=%v", k, fields[k]))
	}

	return strings.Join(parts, " ")
}

func (c *Client) WriteAppMetric(name string, fields map[string]interface{}) error {
	if c.isStub {
		utils.Debug("influxdb-debug", name+" "+formatFields(fields))
		return nil
	}

	batch, err := client.NewBatchPoints(client.BatchPointsConfig{
		Database: c.database,
	})
	if err != nil {
		return errors.Wrap(err, "could not create batch")
	}

	tags := map[string]string{"app": c.appName}

	pt, err := client.NewPoint(name, tags, fields, time.Now())
	if err != nil {
		return errors.Wrapf(err, "invalid metric %s", name)
	}

	batch.AddPoint(pt)

	return errors.Wrap(c.influxdbClient.Write(batch), "could not write metric")
}

func (c *Client) Loop(fn func()) {
	go func() {
		for range c.tickerChannel.C {
			fn()
		}
	}()
}

func (c *Client) TearDown() {
	c.tickerChannel.Stop()

	if c.influxdbClient != nil {
		c.influxdbClient.Close()
	}
}
