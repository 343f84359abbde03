package httpkit

import (
	"net/http"
	"strings"
)

// MountAPI scopes mount under /api/{version} with mw applied to that scope only
//
//	httpkit.MountAPI(r, "v1", httpkit.CommonStack(), func(api httpkit.Router) {
//	  predict.MountRoutes(api) // -> /api/v1/predict/...
//	})
func MountAPI(r Router, version string, mw []func(http.Handler) http.Handler, mount func(Router)) {
	v := strings.Trim(version, "/")
	if v == "" {
		panic("httpkit: MountAPI needs a version")
	}
	MountUnder(r, "/api/"+v, mw, mount)
}

// MountAPIV1 mounts the v1 API scope
func MountAPIV1(r Router, mw []func(http.Handler) http.Handler, mount func(Router)) {
	MountAPI(r, "v1", mw, mount)
}
