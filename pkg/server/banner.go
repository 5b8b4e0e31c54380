package server

import (
	"fmt"

	"github.com/hackercorplabs/coopserve/pkg/middleware"
	"github.com/hackercorplabs/coopserve/utils"
)

// printBanner prints out banner as well as brief server config. port is the port actually bound.
func (ps *coopServer) printBanner(port int) {
	_, _ = fmt.Fprint(ps.out, `
  ___ ___   ___  ___  ___ ___ _____   _____
 / __/ _ \ / _ \| _ \/ __| __| _ \ \ / / __|
| (_| (_) | (_) |  _/\__ \ _||   /\ V /| _|
 \___\___/ \___/|_|  |___/___|_|_\ \_/ |___|

`)
	utils.Titlef(ps.out, " C O O P S E R V E ")
	_, _ = fmt.Fprintln(ps.out)

	host := ps.serverConfig.Host
	if len(host) == 0 {
		host = "(all interfaces)"
	}
	utils.Infof(ps.out, "Host\t\t\t")
	_, _ = fmt.Fprintln(ps.out, host)
	utils.Infof(ps.out, "Port\t\t\t")
	_, _ = fmt.Fprintln(ps.out, port)
	utils.Infof(ps.out, "Root directory\t\t")
	_, _ = fmt.Fprintln(ps.out, ps.serverConfig.RootDir)

	utils.Infof(ps.out, "Directory listing\t")
	_, _ = fmt.Fprintln(ps.out, onOff(ps.serverConfig.DirListing))
	utils.Infof(ps.out, "Compression\t\t")
	_, _ = fmt.Fprintln(ps.out, onOff(ps.serverConfig.Compress))

	headers := middleware.CrossOriginIsolationHeaders()
	for _, name := range []string{middleware.HeaderCrossOriginOpenerPolicy, middleware.HeaderCrossOriginEmbedderPolicy} {
		utils.Infof(ps.out, "Header\t\t\t")
		_, _ = fmt.Fprintf(ps.out, "%s: %s\n", name, headers.Get(name))
	}

	if ps.serverConfig.EnablePrometheus {
		utils.Infof(ps.out, "Prometheus endpoint\t")
		_, _ = fmt.Fprintln(ps.out, PrometheusPath)
	}

	if len(ps.serverConfig.Host) == 0 {
		utils.Warnf(ps.out, "\nBound to all interfaces: %s is reachable from the network\n", ps.serverConfig.RootDir)
	}

	_, _ = fmt.Fprintln(ps.out)
}

func onOff(b bool) string {
	if b {
		return "on"
	}
	return "off"
}
