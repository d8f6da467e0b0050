package a

import (
	"crypto/tls"
	"os"
)

func configs(debug bool) []*tls.Config {
	strict := &tls.Config{MinVersion: tls.VersionTLS13}
	legacy := &tls.Config{MinVersion: tls.VersionTLS10} // want `MinVersion allows protocol versions older than TLS 1.2`
	skip := &tls.Config{InsecureSkipVerify: true}       // want `\[LK1004 critical\] insecure TLS configuration: InsecureSkipVerify disables certificate verification`
	toggled := &tls.Config{InsecureSkipVerify: debug}
	suites := &tls.Config{CipherSuites: []uint16{tls.TLS_RSA_WITH_RC4_128_SHA}} // want `CipherSuites enables a suite`
	modern := &tls.Config{CipherSuites: []uint16{tls.TLS_ECDHE_RSA_WITH_AES_128_GCM_SHA256}}
	both := &tls.Config{InsecureSkipVerify: true, MaxVersion: tls.VersionTLS11} // want `InsecureSkipVerify disables` `MaxVersion limits`

	if debug {
		strict.InsecureSkipVerify = true // want `InsecureSkipVerify disables certificate verification`
	}
	strict.MinVersion = tls.VersionTLS12
	legacy.MaxVersion = tls.VersionTLS11 // want `MaxVersion limits connections`
	toggled.InsecureSkipVerify = os.Getenv("TLS_INSECURE") != ""
	modern.CipherSuites = []uint16{tls.TLS_RSA_WITH_RC4_128_SHA, tls.TLS_AES_128_GCM_SHA256} // want `CipherSuites enables a suite`

	return []*tls.Config{strict, legacy, skip, toggled, suites, modern, both}
}

func defaults() tls.Config {
	var cfg tls.Config
	cfg.MinVersion = 0
	return cfg
}
