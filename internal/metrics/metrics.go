// metrics.go
//
// A factory floor management data service
// Copyright (c) 2026 Alex Grant <info@localnerve.com> (https://www.localnerve.com), LocalNerve LLC
//
// This file is part of floorsdb.
// floorsdb is free software: you can redistribute it and/or modify it
// under the terms of the GNU Affero General Public License as published by the Free Software
// Foundation, either version 3 of the License, or (at your option) any later version.
// floorsdb is distributed in the hope that it will be useful, but WITHOUT ANY WARRANTY;
// without even the implied warranty of MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.
// See the GNU Affero General Public License for more details.
// You should have received a copy of the GNU Affero General Public License along with floorsdb.
// If not, see <https://www.gnu.org/licenses/>.
// Additional terms under GNU AGPL version 3 section 7:
// a) The reasonable legal notice of original copyright and author attribution must be preserved
//    by including the string: "Copyright (c) 2026 Alex Grant <info@localnerve.com> (https://www.localnerve.com), LocalNerve LLC"
//    in this material, copies, or source code of derived works.

package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// StoreErrors counts failed store operations rendered to clients, by error kind
	StoreErrors = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "floorsdb_store_errors_total",
		Help: "Store operation failures returned to clients, by kind.",
	}, []string{"kind"})

	// AllocationAudit counts committed allocation audit rows, by action
	AllocationAudit = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "floorsdb_allocation_audit_total",
		Help: "Allocation audit rows written, by action.",
	}, []string{"action"})
)

// RecordStoreError increments the error counter for kind
func RecordStoreError(kind string) {
	StoreErrors.WithLabelValues(kind).Inc()
}

// RecordAudit increments the audit counter for each committed action
func RecordAudit(actions ...string) {
	for _, a := range actions {
		AllocationAudit.WithLabelValues(a).Inc()
	}
}
