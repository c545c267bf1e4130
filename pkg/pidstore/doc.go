// Package pidstore holds the descriptors for RDM parameters (PIDs).
//
// A RootPidStore carries one PidStore for the ESTA defined parameters and one
// per manufacturer. Stores are loaded from YAML:
//
//	version: 1
//	pids:
//	  - name: DMX_START_ADDRESS
//	    value: 240
//	    get_request: {}
//	    get_response:
//	      field:
//	        - {type: uint16, name: dmx_address}
//	    get_sub_device_range: root_or_subdevice
//	manufacturers:
//	  - id: 31344
//	    name: Open Lighting
//	    pids: [...]
//
// Every message descriptor is checked with rdm.Check when loaded, so a
// descriptor obtained from a store can always be inflated unambiguously.
// DefaultStore returns the embedded store of common ESTA parameters.
package pidstore
