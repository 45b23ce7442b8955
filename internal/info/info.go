// SPDX-License-Identifier: GPL-3.0-or-later

package info

// VERSION gets updated during releases
var VERSION = "v0.1.0"
