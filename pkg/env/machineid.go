package env

import (
	"github.com/denisbrodbeck/machineid"
	"github.com/golang/glog"
)

// FallbackID is used when the machine ID is unavailable.
const FallbackID = "xy2"

// MachineID retrieves the unique ID identifying the machine.
func MachineID() string {
	id, err := machineid.ProtectedID("xy2")
	if err != nil {
		glog.Warningf("machine id unavailable: %v", err)
		return FallbackID
	}
	return id[:12]
}
