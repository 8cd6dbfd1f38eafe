package favorites

import (
	"github.com/agentstation/marquee/pkg/drivers"
	"github.com/agentstation/marquee/pkg/softlists"
)

// MountedImage describes one media slot of a running system.
type MountedImage struct {
	Exists           bool
	FromSoftwareList bool
	ListName         string
	Instance         string
	TypeName         string
	Software         *softlists.Software
	Part             *softlists.Part
}

// mountedSoftware reports whether the image holds a software-list item.
func (m *MountedImage) mountedSoftware() bool {
	return m.Exists && m.FromSoftwareList && m.Software != nil
}

// Session is a running system as seen by the favorites store.
type Session interface {
	System() *drivers.Driver
	Images() []MountedImage
}

// StaticSession is a Session described up front.
type StaticSession struct {
	Driver  *drivers.Driver
	Mounted []MountedImage
}

var _ Session = StaticSession{}

// System implements Session.
func (s StaticSession) System() *drivers.Driver {
	return s.Driver
}

// Images implements Session.
func (s StaticSession) Images() []MountedImage {
	return s.Mounted
}

// eachRunning calls fn once per software item mounted in sess, or once with
// a nil image when nothing is mounted. It stops when fn returns true.
func eachRunning(sess Session, fn func(d *drivers.Driver, img *MountedImage) bool) {
	d := sess.System()
	if d == nil {
		return
	}

	haveSoftware := false
	images := sess.Images()
	for i := range images {
		img := &images[i]
		if !img.mountedSoftware() {
			continue
		}
		haveSoftware = true
		if fn(d, img) {
			return
		}
	}
	if !haveSoftware {
		fn(d, nil)
	}
}

func runningKey(d *drivers.Driver, img *MountedImage) Key {
	if img == nil {
		return SystemKey(d)
	}
	return SoftwareKey(d, img.ListName, img.Software.ShortName)
}
