// Package source loads parameter definitions and models from JSON or YAML
// documents and writes edited models back out. A definitions document looks
// like:
//
//	params:
//	  - {id: 1, name: Name, type: string}
//	model:
//	  paramValues:
//	    - {paramId: 1, value: T-Shirt}
//
// A model document holds just the paramValues list.
package source
