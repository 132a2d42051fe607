package admission

import "github.com/haukened/bindgate/internal/gen/domain"

// The builtin rule tables below are data, not logic: each entry records one
// member (or class) known to break the binding toolchain, tagged with the
// failure class it triggers. Keeping them declarative lets every entry be
// unit-tested on its own and diffed against future upstream releases.

// builtinSource marks decisions produced by the compiled-in tables.
const builtinSource = "builtin"

// pairKey identifies one exact (class, member) pair.
type pairKey struct {
	class  string
	member string
}

// pairDenials lists exact (class, member) pairs that cannot be bound.
var pairDenials = map[pairKey]domain.Reason{
	// The generated functor signature does not match what the binding layer
	// expects for these members.
	{"MeshVS_DataSource", "GetGeom"}:             domain.ReasonSignatureMismatch,
	{"MeshVS_DataSource", "GetGeomType"}:         domain.ReasonSignatureMismatch,
	{"MeshVS_DeformedDataSource", "GetGeom"}:     domain.ReasonSignatureMismatch,
	{"MeshVS_DeformedDataSource", "GetGeomType"}: domain.ReasonSignatureMismatch,
	{"Interface_STAT", "Description"}:            domain.ReasonSignatureMismatch,
	{"Interface_STAT", "Phase"}:                  domain.ReasonSignatureMismatch,

	// Accessor would call a private constructor of the returned class.
	{"VrmlData_Node", "Scene"}:                domain.ReasonPrivateConstructor,
	{"Font_FTFont", "GlyphImage"}:             domain.ReasonPrivateConstructor,
	{"LDOMString", "getOwnerDocument"}:        domain.ReasonPrivateConstructor,
	{"LDOM_MemManager", "Self"}:               domain.ReasonPrivateConstructor,
	{"Aspect_VKeySet", "Mutex"}:               domain.ReasonPrivateConstructor,
	{"Image_VideoRecorder", "ChangeFrame"}:    domain.ReasonPrivateConstructor,
	{"StdPrs_BRepFont", "Mutex"}:              domain.ReasonPrivateConstructor,
	{"AdvApp2Var_Network", "ChangePatch"}:     domain.ReasonPrivateConstructor,
	{"AdvApp2Var_Network", "Patch"}:           domain.ReasonPrivateConstructor,
	{"AdvApp2Var_Framework", "IsoU"}:          domain.ReasonPrivateConstructor,
	{"AdvApp2Var_Framework", "IsoV"}:          domain.ReasonPrivateConstructor,
	{"LDOM_Node", "getOwnerDocument"}:         domain.ReasonPrivateConstructor,

	// Non-const lvalue reference would bind to a temporary.
	{"NCollection_DataMap", "Find"}:                  domain.ReasonTemporaryReference,
	{"OSD_Thread", "Wait"}:                           domain.ReasonTemporaryReference,
	{"TCollection_ExtendedString", "ToUTF8CString"}:  domain.ReasonTemporaryReference,
	{"Message", "ToOSDMetric"}:                       domain.ReasonTemporaryReference,
	{"OSD", "RealToCString"}:                         domain.ReasonTemporaryReference,
	{"XmlObjMgt", "GetInteger"}:                      domain.ReasonTemporaryReference,
	{"XmlObjMgt", "GetReal"}:                         domain.ReasonTemporaryReference,
	{"NCollection_IndexedDataMap", "FindFromKey"}:    domain.ReasonTemporaryReference,
	{"BOPAlgo_Tools", "PerformCommonBlocks"}:         domain.ReasonTemporaryReference,
	{"Transfer_Finder", "GetStringAttribute"}:        domain.ReasonTemporaryReference,
	{"MoniTool_TypedValue", "Internals"}:             domain.ReasonTemporaryReference,
	{"MoniTool_AttrList", "GetStringAttribute"}:      domain.ReasonTemporaryReference,
	{"MoniTool_CaseData", "Text"}:                    domain.ReasonTemporaryReference,
	{"StepData_StepReaderData", "ReadEnumParam"}:     domain.ReasonTemporaryReference,
	{"MeshVS_DataSource", "GetGroup"}:                domain.ReasonTemporaryReference,

	// Trips the static assert against implicitly bound raw-pointer callbacks.
	{"Graphic3d_GraduatedTrihedron", "CubicAxesCallback"}: domain.ReasonRawPointerCallback,

	// Materializing the return value needs a deleted or private copy ctor.
	{"AIS_ViewController", "Keys"}:             domain.ReasonDeletedCopy,
	{"AIS_ViewController", "ChangeKeys"}:       domain.ReasonDeletedCopy,
	{"BRepClass3d_SolidExplorer", "GetTree"}:   domain.ReasonDeletedCopy,

	// Undefined symbol at final link/instantiation; the implementation is
	// absent or inconsistent in the underlying library.
	{"Geom2dHatch_Hatcher", "IsDone"}:                   domain.ReasonUndefinedSymbol,
	{"Geom2dAPI_Interpolate", "ClearTangents"}:          domain.ReasonUndefinedSymbol,
	{"Geom2dGcc_Lin2dTanObl", "IsParallel2"}:            domain.ReasonUndefinedSymbol,
	{"Geom2dInt_Geom2dCurveTool", "IsComposite"}:        domain.ReasonUndefinedSymbol,
	{"GeomInt_IntSS", "SetTolFixTangents"}:              domain.ReasonUndefinedSymbol,
	{"GeomInt_IntSS", "TolFixTangents"}:                 domain.ReasonUndefinedSymbol,
	{"GeomAPI_Interpolate", "ClearTangents"}:            domain.ReasonUndefinedSymbol,
	{"GeomFill_FunctionGuide", "Deriv2T"}:               domain.ReasonUndefinedSymbol,
	{"GeomFill_SweepSectionGenerator", "Init"}:          domain.ReasonUndefinedSymbol,
	{"GeomInt_WLApprox", "Perform"}:                     domain.ReasonUndefinedSymbol,
	{"Geom2dInt_TheCurveLocatorOfTheProjPCurOfGInter", "Locate"}:                       domain.ReasonUndefinedSymbol,
	{"GeomInt_ResConstraintOfMyGradientOfTheComputeLineBezierOfWLApprox", "Error"}:     domain.ReasonUndefinedSymbol,
	{"GeomInt_ResConstraintOfMyGradientbisOfTheComputeLineOfWLApprox", "Error"}:        domain.ReasonUndefinedSymbol,
}

// classDenials lists classes rejected wholesale: every member of these
// classes binds a non-const reference to a temporary somewhere.
var classDenials = map[string]domain.Reason{
	"Resource_Unicode": domain.ReasonTemporaryReference,
	"XSControl_Vars":   domain.ReasonTemporaryReference,
}

// bitFieldClassTypes lists storage types whose members are all bit-fields.
// Matched against the owning class storage-type spelling, not the class name,
// so typedef'd uses are caught too.
var bitFieldClassTypes = map[string]struct{}{
	"MeshVS_TwoColors": {},
}

// bitFieldMembers lists individual members backed by bit-field storage.
var bitFieldMembers = map[pairKey]struct{}{
	{"Graphic3d_CStructure", "IsInfinite"}:     {},
	{"Graphic3d_CStructure", "stick"}:          {},
	{"Graphic3d_CStructure", "highlight"}:      {},
	{"Graphic3d_CStructure", "visible"}:        {},
	{"Graphic3d_CStructure", "HLRValidation"}:  {},
	{"Graphic3d_CStructure", "IsForHighlight"}: {},
	{"Graphic3d_CStructure", "IsMutable"}:      {},
	{"Graphic3d_CStructure", "Is2dText"}:       {},
}

// iteratorDenyClasses lists container templates whose nested-iterator
// members cause unbounded memory growth while the bindings instantiate.
var iteratorDenyClasses = map[string]struct{}{
	"NCollection_Sequence": {},
	"NCollection_List":     {},
}

const (
	// iteratorMarker flags nested-iterator members in display signatures.
	iteratorMarker = "::Iterator"

	// ostreamPrefix matches result types spelling an output stream,
	// including reference and template-argument variants.
	ostreamPrefix = "Standard_OStream"

	// ifstreamType matches members declared as an input file stream.
	ifstreamType = "std::ifstream"

	// lerpClass/lerpMember identify the static template-specialization
	// method whose generated function-pointer cast is ill-formed.
	lerpClass  = "NCollection_Lerp"
	lerpMember = "Interpolate"
)
