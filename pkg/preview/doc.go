// Package preview serves the markup renderers over HTTP.
//
// Routes:
//
//	POST /v1/attributes     attribute document -> attribute string
//	POST /v1/tags/{name}    tag document -> element from the named builder
//	POST /v1/options        select document -> option lines
//	GET  /v1/paths          ?expr=&form= -> input name and id
//	POST /v1/encode         raw text -> encoded text
//	POST /v1/decode         raw text -> decoded text
//	GET  /healthz
//	GET  /metrics           Prometheus exposition, when enabled
//
// Documents are YAML or JSON. Renders answer {"html": "..."}. Rejected
// documents answer 400 with the coded error as JSON.
//
//	srv := preview.New(cfg, preview.WithLogger(logger))
//	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
//	defer stop()
//	err := srv.Run(ctx)
package preview
