// SPDX-License-Identifier: GPL-3.0-or-later

package scanner_test

import (
	"encoding/json"
	"net"
	"testing"

	"github.com/robgonnella/go-wifiscan/pkg/scanner"
	"github.com/stretchr/testify/assert"
)

func TestNetworkRecord(t *testing.T) {
	t.Run("is serializable", func(st *testing.T) {
		bssid, _ := net.ParseMAC("9c:3d:cf:fa:93:b8")
		essid := "HomeNet"

		record := &scanner.NetworkRecord{
			ESSID:      &essid,
			BSSID:      bssid,
			Encryption: scanner.EncryptionWPA2,
			Channel:    "6",
			Frequency:  "2.437 GHz",
			Quality:    "51/70",
			Signal:     "-59 dBm",
		}

		serialized, err := json.Marshal(record.Serializable())

		assert.NoError(st, err)

		resultMap := map[string]interface{}{}

		err = json.Unmarshal(serialized, &resultMap)

		assert.NoError(st, err)

		assert.Equal(st, resultMap["essid"], "HomeNet")
		assert.Equal(st, resultMap["bssid"], bssid.String())
		assert.Equal(st, resultMap["encryption"], "WPA2")
		assert.Equal(st, resultMap["frequency"], "2.437 GHz")
	})

	t.Run("serializes hidden essid as null", func(st *testing.T) {
		bssid, _ := net.ParseMAC("12:34:56:78:9a:bc")

		record := &scanner.NetworkRecord{
			BSSID:      bssid,
			Encryption: scanner.EncryptionOpen,
		}

		serialized, err := json.Marshal(record.Serializable())

		assert.NoError(st, err)

		resultMap := map[string]interface{}{}

		err = json.Unmarshal(serialized, &resultMap)

		assert.NoError(st, err)
		assert.Nil(st, resultMap["essid"])
	})
}
