package httpkit

import "net/http"

// MountUnder mounts a module's routes at prefix with its own middleware
// an empty or "/" prefix mounts an inline group on r so routes keep their paths
func MountUnder(r Router, prefix string, mw []func(http.Handler) http.Handler, mount func(Router)) {
	scoped := func(sub Router) {
		if len(mw) > 0 {
			sub.Use(mw...)
		}
		mount(sub)
	}
	if prefix == "" || prefix == "/" {
		r.Group(scoped)
		return
	}
	r.Route(prefix, scoped)
}
