package acmesink

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"9fans.net/go/plan9"
	"9fans.net/go/plan9/client"
)

// styleLayer is a client handle for one named layer in the styles
// compositor serving the editor.  The compositor is a 9P file server that
// composes named layers of style runs per window into the window's style
// stream; deckmark owns a single layer per window and replaces its content
// wholesale on every flush.
type styleLayer struct {
	fs    *client.Fsys
	winID int
	layID int
}

// openLayer mounts the compositor service and finds or creates the named
// layer for winID.
func openLayer(winID int, name string) (*styleLayer, error) {
	fs, err := client.MountService("acme-styles")
	if err != nil {
		return nil, fmt.Errorf("mount styles compositor: %w", err)
	}
	layID, err := findOrCreate(fs, winID, name)
	if err != nil {
		return nil, err
	}
	return &styleLayer{fs: fs, winID: winID, layID: layID}, nil
}

// write replaces the layer's whole content with pre-formatted wire text.
// Opening the style file OWRITE clears the previous content; the compositor
// flushes at clunk.
func (l *styleLayer) write(text string) error {
	fid, err := l.fs.Open(fmt.Sprintf("%d/layers/%d/style", l.winID, l.layID), plan9.OWRITE)
	if err != nil {
		return fmt.Errorf("open layer style: %w", err)
	}
	defer fid.Close()
	if _, err := fid.Write([]byte(text)); err != nil {
		return fmt.Errorf("write layer style: %w", err)
	}
	return nil
}

// clear removes all runs from the layer.
func (l *styleLayer) clear() error { return l.ctl("clear\n") }

// remove deletes the layer from the compositor entirely; call on shutdown
// so styling does not linger in open windows.
func (l *styleLayer) remove() error { return l.ctl("delete\n") }

func (l *styleLayer) ctl(cmd string) error {
	fid, err := l.fs.Open(fmt.Sprintf("%d/layers/%d/ctl", l.winID, l.layID), plan9.OWRITE)
	if err != nil {
		return fmt.Errorf("open layer ctl: %w", err)
	}
	defer fid.Close()
	if _, err := fid.Write([]byte(cmd)); err != nil {
		return fmt.Errorf("write layer ctl: %w", err)
	}
	return nil
}

// findOrCreate returns the ID of the named layer on winID, allocating and
// naming a fresh one when absent.
func findOrCreate(fs *client.Fsys, winID int, name string) (int, error) {
	if id, ok := find(fs, winID, name); ok {
		return id, nil
	}

	newFid, err := fs.Open(fmt.Sprintf("%d/layers/new", winID), plan9.OREAD)
	if err != nil {
		return 0, fmt.Errorf("open layers/new: %w", err)
	}
	data, err := io.ReadAll(newFid)
	newFid.Close()
	if err != nil {
		return 0, fmt.Errorf("read layers/new: %w", err)
	}
	layID, err := strconv.Atoi(strings.TrimSpace(string(data)))
	if err != nil {
		return 0, fmt.Errorf("parse layer id %q: %w", string(data), err)
	}

	nameFid, err := fs.Open(fmt.Sprintf("%d/layers/%d/name", winID, layID), plan9.OWRITE)
	if err != nil {
		return 0, fmt.Errorf("open layer name: %w", err)
	}
	nameFid.Write([]byte(name)) //nolint:errcheck
	nameFid.Close()

	return layID, nil
}

// find looks the layer up by name in the window's layers/index.
func find(fs *client.Fsys, winID int, name string) (int, bool) {
	fid, err := fs.Open(fmt.Sprintf("%d/layers/index", winID), plan9.OREAD)
	if err != nil {
		return 0, false
	}
	data, err := io.ReadAll(fid)
	fid.Close()
	if err != nil {
		return 0, false
	}
	for _, line := range strings.Split(string(data), "\n") {
		fields := strings.Fields(line)
		if len(fields) == 2 && fields[1] == name {
			if id, err := strconv.Atoi(fields[0]); err == nil {
				return id, true
			}
		}
	}
	return 0, false
}
