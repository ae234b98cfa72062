package kabigen

import "fmt"

// InternalKind classifies an internal symbol.
type InternalKind int

// Internal symbol kinds.
const (
	KindFunction InternalKind = iota
	KindMacro
	KindType
)

// String returns the display form of the kind.
func (k InternalKind) String() string {
	switch k {
	case KindFunction:
		return "function"
	case KindMacro:
		return "macro"
	case KindType:
		return "type"
	default:
		return fmt.Sprintf("InternalKind(%d)", int(k))
	}
}

// Token returns the serialized form of the kind as it appears in records.
// For internal kinds the serialized and display forms coincide.
func (k InternalKind) Token() string {
	return k.String()
}

// ParseInternalKind converts a record token into an InternalKind.
func ParseInternalKind(token string) (InternalKind, error) {
	switch token {
	case "function":
		return KindFunction, nil
	case "macro":
		return KindMacro, nil
	case "type":
		return KindType, nil
	default:
		return 0, fmt.Errorf("unknown internal symbol kind %q", token)
	}
}

// ExternalKind classifies an external symbol.
type ExternalKind int

// External symbol kinds.
const (
	ExternalFunction ExternalKind = iota
	ExternalGlobalVar
	ExternalModuleParam
	ExternalSysctlOpt
)

// String returns the display form of the kind.
func (k ExternalKind) String() string {
	switch k {
	case ExternalFunction:
		return "function"
	case ExternalGlobalVar:
		return "global variable"
	case ExternalModuleParam:
		return "module parameter"
	case ExternalSysctlOpt:
		return "sysctl option"
	default:
		return fmt.Sprintf("ExternalKind(%d)", int(k))
	}
}

// Token returns the serialized form of the kind as it appears in records.
func (k ExternalKind) Token() string {
	switch k {
	case ExternalFunction:
		return "function"
	case ExternalGlobalVar:
		return "global-variable"
	case ExternalModuleParam:
		return "module-parameter"
	case ExternalSysctlOpt:
		return "sysctl-option"
	default:
		return fmt.Sprintf("ExternalKind(%d)", int(k))
	}
}

// ParseExternalKind converts a record token into an ExternalKind.
func ParseExternalKind(token string) (ExternalKind, error) {
	switch token {
	case "function":
		return ExternalFunction, nil
	case "global-variable":
		return ExternalGlobalVar, nil
	case "module-parameter":
		return ExternalModuleParam, nil
	case "sysctl-option":
		return ExternalSysctlOpt, nil
	default:
		return 0, fmt.Errorf("unknown external symbol kind %q", token)
	}
}
