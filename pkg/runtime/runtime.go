package runtime

import (
	"fmt"

	"github.com/adrg/xdg"
)

const (
	XDGName = "standings"
)

// File is a path under the XDG runtime dir, used for the pprof socket.
func File(filename string) (string, error) {
	return xdg.RuntimeFile(fmt.Sprintf("%s/%s", XDGName, filename))
}

func DataFile(filename string) (string, error) {
	return xdg.DataFile(fmt.Sprintf("%s/%s", XDGName, filename))
}

func StateFile(filename string) (string, error) {
	return xdg.StateFile(fmt.Sprintf("%s/%s", XDGName, filename))
}
