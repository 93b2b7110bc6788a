// Package config loads markup.yaml, the configuration of the markup CLI and
// preview server.
//
// # Configuration File Structure
//
//	renderer:
//	  booleanAttributes: [itemscope-lite]
//	  dataAttributes: [hx]
//	forms:
//	  methodParam: _method
//	  csrfParam: _csrf
//	server:
//	  host: ${MARKUP_HOST:-localhost}
//	  port: 8080
//	  readTimeout: 5s
//	  shutdownTimeout: 10s
//	metrics:
//	  enabled: true
//	  namespace: markup
//	  path: /metrics
//	tracing:
//	  enabled: false
//	  tracerName: markup-preview
//	log:
//	  level: info
//	  format: text
//
// JSON is accepted as well, since it is valid YAML.
//
// # Usage
//
//	cfg, err := config.Load(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if err := cfg.Validate(); err != nil {
//	    log.Fatal(err)
//	}
//	renderer := cfg.NewRenderer()
package config
