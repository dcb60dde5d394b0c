package resolve

// Name uniquely identifies a logical package within one resolution.
type Name string

// Requirement is an opaque domain object describing a constraint on a
// single logical package. The core never inspects its contents; it only
// asks the SpecificationProvider for the package name a requirement refers
// to, asks whether a requirement is satisfied by a given activated graph
// plus candidate, and compares requirements for equality with ==.
//
// Concrete Requirement values supplied by a SpecificationProvider must
// therefore be comparable (no slices, maps, or funcs as the underlying
// type) or the equality checks made while unwinding the state stack will
// panic.
type Requirement = any

// Possibility is an opaque concrete candidate that may satisfy a
// Requirement and in turn carries its own nested Requirements. The core
// treats possibilities as immutable values, asking the provider only for
// their name and their dependencies.
type Possibility = any
