// SPDX-License-Identifier: GPL-3.0-or-later

package scanner

import (
	"fmt"
	"net"
	"regexp"
	"strings"
)

var (
	cellHeaderRegex = regexp.MustCompile(`Cell \d+ - Address: ([0-9A-Fa-f:]+)`)
	essidRegex      = regexp.MustCompile(`ESSID:"(.*?)"`)
	encKeyRegex     = regexp.MustCompile(`Encryption key:(on|off)`)
	wpa2Regex       = regexp.MustCompile(`IE: IEEE 802\.11i/WPA2 Version`)
	wpaRegex        = regexp.MustCompile(`IE: WPA Version 1`)
	saeRegex        = regexp.MustCompile(`Authentication Suites \(\d+\) :[^\n]*SAE`)
	channelRegex    = regexp.MustCompile(`Channel:(\d+)`)
	frequencyRegex  = regexp.MustCompile(`Frequency:([\d.]+ GHz)`)
	qualityRegex    = regexp.MustCompile(`Quality[=:](\d+/\d+)`)
	signalRegex     = regexp.MustCompile(`Signal level[=:](-?\d+ dBm)`)

	// zero-cell output is still a valid scan when the tool reported a
	// recognizable preamble
	emptyScanRegex = regexp.MustCompile(`Scan completed|No scan results`)
)

// Parse converts raw iwlist cell-block output into a ScanResult. Records
// appear in the order their cells appeared in the input; partial cells are
// resolved by field-level defaulting (nil ESSID, open encryption) rather
// than rejected.
func Parse(raw string) (*ScanResult, error) {
	if strings.TrimSpace(raw) == "" {
		return nil, fmt.Errorf("%w: empty scan output", ErrMalformedOutput)
	}

	headers := cellHeaderRegex.FindAllStringSubmatchIndex(raw, -1)

	if len(headers) == 0 {
		if emptyScanRegex.MatchString(raw) {
			return &ScanResult{Networks: []*NetworkRecord{}}, nil
		}

		return nil, fmt.Errorf(
			"%w: no network cells found in output",
			ErrMalformedOutput,
		)
	}

	result := &ScanResult{Networks: []*NetworkRecord{}}

	for i, header := range headers {
		end := len(raw)

		if i+1 < len(headers) {
			end = headers[i+1][0]
		}

		cell := raw[header[0]:end]
		address := raw[header[2]:header[3]]

		bssid, err := net.ParseMAC(address)

		if err != nil {
			result.Skipped++
			continue
		}

		result.Networks = append(result.Networks, &NetworkRecord{
			ESSID:      parseEssid(cell),
			BSSID:      bssid,
			Encryption: parseEncryption(cell),
			Channel:    firstSubmatch(channelRegex, cell),
			Frequency:  firstSubmatch(frequencyRegex, cell),
			Quality:    firstSubmatch(qualityRegex, cell),
			Signal:     firstSubmatch(signalRegex, cell),
		})
	}

	return result, nil
}

// parseEssid returns nil for hidden networks i.e. a blank quoted name or a
// missing ESSID field entirely
func parseEssid(cell string) *string {
	match := essidRegex.FindStringSubmatch(cell)

	if len(match) < 2 || match[1] == "" {
		return nil
	}

	essid := match[1]

	return &essid
}

// parseEncryption collapses possibly multiple advertised schemes into one
// descriptor. Strongest wins: WPA3 > WPA2 > WPA > WEP. Key off or no
// encryption field at all means open.
func parseEncryption(cell string) Encryption {
	keyMatch := encKeyRegex.FindStringSubmatch(cell)

	if len(keyMatch) < 2 || keyMatch[1] == "off" {
		return EncryptionOpen
	}

	if saeRegex.MatchString(cell) {
		return EncryptionWPA3
	}

	if wpa2Regex.MatchString(cell) {
		return EncryptionWPA2
	}

	if wpaRegex.MatchString(cell) {
		return EncryptionWPA
	}

	return EncryptionWEP
}

func firstSubmatch(re *regexp.Regexp, cell string) string {
	match := re.FindStringSubmatch(cell)

	if len(match) < 2 {
		return ""
	}

	return match[1]
}
