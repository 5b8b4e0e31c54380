package server

import (
	"log"
	"net"
	"net/http"
	"strconv"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	"github.com/hackercorplabs/coopserve/pkg/middleware"
	"github.com/hackercorplabs/coopserve/utils"
	"github.com/sirupsen/logrus"
)

// initialize sets up basic configurations according to the serverConfig object such as setting output writer,
// log formatter, creating a router instance, and setting up an HttpServer instance.
func (ps *coopServer) initialize() error {
	// initialize log output streams
	if err := ps.serverConfig.LogConfig.PrepareLogFiles(); err != nil {
		return err
	}

	// alias the platform log as ps.out
	ps.out = ps.serverConfig.LogConfig.GetPlatformLogFilePointer()

	// set logrus out writer options and assign output stream to ps.out
	formatter := utils.CreateTextFormatterFromFormatOptions(ps.serverConfig.LogConfig.FormatOptions)
	utils.Log.SetFormatter(formatter)
	utils.Log.SetOutput(ps.out)

	// if debug flag is provided enable extra logging
	if ps.serverConfig.Debug {
		utils.Log.SetLevel(logrus.DebugLevel)
		utils.Log.Debugln("Debug logging enabled")
	}

	ps.router = mux.NewRouter()

	// register a reserved path /prometheus for request metrics, if enabled
	if ps.serverConfig.EnablePrometheus {
		if err := enablePrometheus(ps); err != nil {
			return err
		}
	}

	// everything else comes straight off the disk
	var root http.FileSystem = http.Dir(ps.serverConfig.RootDir)
	if !ps.serverConfig.DirListing {
		root = noDirFileSystem{root}
	}
	utils.Log.Debugf("Serving static path %s at /", ps.serverConfig.RootDir)
	ps.router.PathPrefix("/").Name("static").Handler(newStaticHandler(root))

	ps.handler = middleware.BuildChain(ps.router, ps.buildMiddleware()...)

	// create an http server instance
	ps.HttpServer = &http.Server{
		Addr:     net.JoinHostPort(ps.serverConfig.Host, strconv.Itoa(ps.serverConfig.Port)),
		Handler:  ps.handler,
		ErrorLog: log.New(ps.serverConfig.LogConfig.GetErrorLogFilePointer(), "ERROR ", log.LstdFlags),
	}
	return nil
}

// buildMiddleware lists the middleware wrapped around the router, outermost first. cross-origin isolation
// comes first so the headers are already in place when recovery writes a 500.
func (ps *coopServer) buildMiddleware() []middleware.Middleware {
	chain := []middleware.Middleware{
		middleware.CrossOriginIsolation,
		middleware.NewMiddleware("RecoveryMiddleware", handlers.RecoveryHandler(
			handlers.RecoveryLogger(utils.Log),
			handlers.PrintRecoveryStack(ps.serverConfig.Debug))),
	}

	if ps.serverConfig.Compress {
		chain = append(chain, middleware.NewMiddleware("CompressMiddleware", handlers.CompressHandler))
	}

	accessLog := ps.serverConfig.LogConfig.GetAccessLogFilePointer()
	chain = append(chain, middleware.NewMiddleware("AccessLogMiddleware", func(h http.Handler) http.Handler {
		return handlers.CombinedLoggingHandler(accessLog, h)
	}))

	if ps.requestMetrics != nil {
		chain = append(chain, middleware.NewMiddleware("RequestMetricsMiddleware", ps.requestMetrics.Instrument))
	}

	for _, mw := range chain {
		utils.Log.Debugf("middleware '%s' registered", mw.Name())
	}
	return chain
}
