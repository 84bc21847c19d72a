package api

import (
	"net/http"
)

type bearerOpt struct {
	token string
}

// Bearer attaches an explicit Authorization header, overriding whatever the
// generator's token provider would have supplied.
func Bearer(token string) *bearerOpt {
	return &bearerOpt{token: "Bearer " + token}
}

func (opt *bearerOpt) Do(client defaultClient, req *http.Request) {
	req.Header.Set("Authorization", opt.token)
}
