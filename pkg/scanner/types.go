// SPDX-License-Identifier: GPL-3.0-or-later

package scanner

import (
	"context"
	"net"
)

//go:generate mockgen -destination=../../mock/scanner/scanner.go -package=mock_scanner . Scanner,CommandRunner

// Scanner interface for scanning a wireless interface for nearby networks
type Scanner interface {
	Scan(ctx context.Context, ifaceName string) (*ScanResult, error)
}

// CommandRunner interface for running the external scan command. The
// default implementation shells out via os/exec; tests substitute canned
// output.
type CommandRunner interface {
	Run(ctx context.Context, name string, args ...string) (stdout []byte, stderr []byte, err error)
}

// Encryption represents the normalized security scheme of a network
type Encryption string

const (
	// EncryptionOpen network advertises no encryption
	EncryptionOpen Encryption = "open"
	// EncryptionWEP encryption key is on but no WPA IE is advertised
	EncryptionWEP Encryption = "WEP"
	// EncryptionWPA network advertises a WPA version 1 IE
	EncryptionWPA Encryption = "WPA"
	// EncryptionWPA2 network advertises an IEEE 802.11i/WPA2 IE
	EncryptionWPA2 Encryption = "WPA2"
	// EncryptionWPA3 network advertises SAE authentication suites
	EncryptionWPA3 Encryption = "WPA3"
)

// NetworkRecord represents a single detected wireless network
type NetworkRecord struct {
	// ESSID is nil for hidden networks reporting a blank or missing name
	ESSID      *string
	BSSID      net.HardwareAddr
	Encryption Encryption
	Channel    string
	Frequency  string
	Quality    string
	Signal     string
}

func (r *NetworkRecord) Serializable() interface{} {
	return struct {
		ESSID      *string `json:"essid"`
		BSSID      string  `json:"bssid"`
		Encryption string  `json:"encryption"`
		Channel    string  `json:"channel"`
		Frequency  string  `json:"frequency"`
		Quality    string  `json:"quality"`
		Signal     string  `json:"signal"`
	}{
		ESSID:      r.ESSID,
		BSSID:      r.BSSID.String(),
		Encryption: string(r.Encryption),
		Channel:    r.Channel,
		Frequency:  r.Frequency,
		Quality:    r.Quality,
		Signal:     r.Signal,
	}
}

// ScanResult represents the outcome of a single scan invocation. Networks
// preserves the order cells appeared in the tool output. Skipped counts
// cells dropped because their header address could not be parsed.
type ScanResult struct {
	Networks []*NetworkRecord
	Skipped  int
}
