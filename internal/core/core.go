// SPDX-License-Identifier: GPL-3.0-or-later

package core

import (
	"context"
	"encoding/json"
	"fmt"
	"net"
	"os"
	"time"

	"github.com/jedib0t/go-pretty/progress"
	"github.com/jedib0t/go-pretty/table"
	"github.com/rs/zerolog"

	"github.com/robgonnella/go-wifiscan/internal/logger"
	"github.com/robgonnella/go-wifiscan/internal/util"
	"github.com/robgonnella/go-wifiscan/pkg/oui"
	"github.com/robgonnella/go-wifiscan/pkg/scanner"
)

const hiddenLabel = "(hidden)"

type NetworkResult struct {
	ESSID      *string
	BSSID      net.HardwareAddr
	Encryption scanner.Encryption
	Channel    string
	Frequency  string
	Quality    string
	Signal     string
	Vendor     string
}

func (r *NetworkResult) Serializable() interface{} {
	return struct {
		ESSID      *string `json:"essid"`
		BSSID      string  `json:"bssid"`
		Encryption string  `json:"encryption"`
		Channel    string  `json:"channel"`
		Frequency  string  `json:"frequency"`
		Quality    string  `json:"quality"`
		Signal     string  `json:"signal"`
		Vendor     string  `json:"vendor,omitempty"`
	}{
		ESSID:      r.ESSID,
		BSSID:      r.BSSID.String(),
		Encryption: string(r.Encryption),
		Channel:    r.Channel,
		Frequency:  r.Frequency,
		Quality:    r.Quality,
		Signal:     r.Signal,
		Vendor:     r.Vendor,
	}
}

type Results struct {
	Networks []*NetworkResult
	Skipped  int
}

func (r *Results) MarshalJSON() ([]byte, error) {
	networks := []interface{}{}

	for _, n := range r.Networks {
		networks = append(networks, n.Serializable())
	}

	return json.Marshal(struct {
		Networks []interface{} `json:"networks"`
		Skipped  int           `json:"skipped"`
	}{
		Networks: networks,
		Skipped:  r.Skipped,
	})
}

type Core struct {
	ifaceName      string
	timeoutSeconds int
	noProgress     bool
	printJson      bool
	noHidden       bool
	vendorInfo     bool
	outFile        string
	scanner        scanner.Scanner
	vendorRepo     oui.VendorRepo
	pw             progress.Writer
	tracker        *progress.Tracker
	log            logger.Logger
}

func New() *Core {
	return &Core{
		log: logger.New(),
	}
}

func (c *Core) Initialize(
	coreScanner scanner.Scanner,
	vendorRepo oui.VendorRepo,
	ifaceName string,
	timeoutSeconds int,
	noProgress bool,
	printJson bool,
	noHidden bool,
	vendorInfo bool,
	outFile string,
) {
	if noProgress {
		logger.SetGlobalLevel(zerolog.Disabled)
	}

	c.scanner = coreScanner
	c.vendorRepo = vendorRepo
	c.ifaceName = ifaceName
	c.timeoutSeconds = timeoutSeconds
	c.noProgress = noProgress
	c.printJson = printJson
	c.noHidden = noHidden
	c.vendorInfo = vendorInfo
	c.outFile = outFile
	c.pw = progressWriter()
	// indeterminate tracker - a single scan invocation reports no
	// intermediate progress
	c.tracker = &progress.Tracker{
		Message: fmt.Sprintf("scanning %s", ifaceName),
	}
}

func (c *Core) Run() error {
	start := time.Now()

	ctx := context.Background()

	if c.timeoutSeconds > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(
			ctx,
			time.Second*time.Duration(c.timeoutSeconds),
		)
		defer cancel()
	}

	if !c.noProgress {
		c.pw.AppendTracker(c.tracker)
		go c.pw.Render()
	}

	resultChan := make(chan *scanner.ScanResult)
	errorChan := make(chan error)

	// run in go routine so progress renders while the external tool blocks
	go func() {
		res, err := c.scanner.Scan(ctx, c.ifaceName)

		if err != nil {
			errorChan <- err
			return
		}

		resultChan <- res
	}()

	select {
	case err := <-errorChan:
		c.stopProgress()
		return err
	case res := <-resultChan:
		c.stopProgress()

		results, err := c.collectResults(res)

		if err != nil {
			return err
		}

		if err := c.printResults(results); err != nil {
			return err
		}

		c.log.Info().
			Str("duration", time.Since(start).String()).
			Msg("go-wifiscan complete")

		return nil
	}
}

func (c *Core) stopProgress() {
	if c.noProgress {
		return
	}

	c.tracker.MarkAsDone()
	c.pw.Stop()
}

func (c *Core) collectResults(res *scanner.ScanResult) (*Results, error) {
	networks := res.Networks

	if c.noHidden {
		networks = util.FilterSlice(networks, func(n *scanner.NetworkRecord) bool {
			return n.ESSID != nil
		})
	}

	results := &Results{
		Networks: []*NetworkResult{},
		Skipped:  res.Skipped,
	}

	for _, n := range networks {
		result := &NetworkResult{
			ESSID:      n.ESSID,
			BSSID:      n.BSSID,
			Encryption: n.Encryption,
			Channel:    n.Channel,
			Frequency:  n.Frequency,
			Quality:    n.Quality,
			Signal:     n.Signal,
		}

		if c.vendorInfo {
			vendor, err := c.vendorRepo.Query(n.BSSID)

			if err != nil {
				return nil, err
			}

			result.Vendor = vendor.Name
		}

		results.Networks = append(results.Networks, result)
	}

	if results.Skipped > 0 {
		c.log.Warn().
			Int("skipped", results.Skipped).
			Msg("some network cells could not be parsed")
	}

	return results, nil
}

func (c *Core) printResults(results *Results) error {
	if c.printJson {
		data, err := results.MarshalJSON()

		if err != nil {
			return err
		}

		fmt.Println(string(data))

		if c.outFile != "" {
			if err := os.WriteFile(c.outFile, data, 0644); err != nil {
				c.log.Error().Err(err).Msg("failed to write output report")
			}
		}

		return nil
	}

	header := table.Row{"SSID", "BSSID", "ENCRYPTION", "CHANNEL", "SIGNAL", "QUALITY"}

	if c.vendorInfo {
		header = append(header, "VENDOR")
	}

	netTable := table.NewWriter()
	netTable.SetOutputMirror(os.Stdout)
	netTable.AppendHeader(header)

	for _, n := range results.Networks {
		essid := hiddenLabel

		if n.ESSID != nil {
			essid = *n.ESSID
		}

		row := table.Row{
			essid,
			n.BSSID.String(),
			string(n.Encryption),
			n.Channel,
			n.Signal,
			n.Quality,
		}

		if c.vendorInfo {
			row = append(row, n.Vendor)
		}

		netTable.AppendRow(row)
	}

	output := netTable.Render()

	if c.outFile != "" {
		if err := os.WriteFile(c.outFile, []byte(output), 0644); err != nil {
			c.log.Error().Err(err).Msg("failed to write output report")
		}
	}

	return nil
}

// helpers
func progressWriter() progress.Writer {
	pw := progress.NewWriter()
	pw.SetOutputWriter(os.Stdout)
	pw.SetAutoStop(false)
	pw.SetTrackerLength(25)
	pw.SetMessageWidth(47)
	pw.SetNumTrackersExpected(1)
	pw.SetStyle(progress.StyleDefault)
	pw.SetTrackerPosition(progress.PositionRight)
	pw.SetUpdateFrequency(time.Millisecond * 100)
	pw.Style().Colors = progress.StyleColorsExample

	return pw
}
