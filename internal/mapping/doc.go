// Package mapping provides the YAML synthesis file: schema definitions,
// parsing, structural validation and conversion into pipeline requests
// and an in-memory oracle snapshot.
//
// # Schema Overview
//
//	version: "1"
//	requests:
//	  - name: clock
//	    pattern: adapter        # adapter | decorator | facade
//	    mode: contract_first    # contract_first | host_first | auto_target
//	    policy: stub            # error | stub | ignore
//	    contract: clock.Clock
//	    host: example.com/legacy
//	    scope: example.com/out
//	    type: ClockAdapter
//	    receiver: "*legacy.Clock"
//	    package: out
//	# Optional inline declarations
//	packages:
//	  clock: example.com/clock
//	  time: time
//	contracts:
//	  - name: clock.Clock
//	    extends: clock.Base
//	    members:
//	      - name: Sleep
//	        params: [{d: time.Duration}]
//	      - name: Fetch
//	        params: ["...string"]
//	        result: "<-chan int"
//	hosts:
//	  - name: example.com/legacy
//	    fragments:
//	      - name: CurrentTime
//	        target: Now
//	        params: [{c: "*legacy.Clock"}]
//	        result: time.Time
//	scopes:
//	  - name: example.com/out
//	    names: {Existing: type}
//
// Names are NFC-normalized on load. Validate reports structural problems
// as CFG diagnostics; references are only checked when the pipeline runs.
package mapping
