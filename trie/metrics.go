package trie

import "github.com/prometheus/client_golang/prometheus"

// nodesPersistedTotal counts nodes written to the store across all Trie
// handles in the process, one increment per hasher.persist call that
// actually issues a Put (i.e. per dirty shortNode/fullNode, not per
// untouched hashNode/valueNode passed through unchanged).
var nodesPersistedTotal = prometheus.NewCounter(prometheus.CounterOpts{
	Namespace: "mttrie",
	Subsystem: "trie",
	Name:      "nodes_persisted_total",
	Help:      "Number of trie nodes hashed and written to the node store.",
})

func init() {
	prometheus.MustRegister(nodesPersistedTotal)
}
