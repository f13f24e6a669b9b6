package csc

// The ultra-compact abbreviation table is an Open Question in spec.md §9
// ("not fully fixed by the source"). SPEC_FULL.md §12 freezes it here: a
// 3-letter code per Root (64 symbols don't fit single letters without
// collision), a single-letter code per Operator, and a single-letter code
// per Meta. Role prefixes are shared with the compact format (RolePrefix in
// role.go). This table must never change shape without bumping
// UltraTableVersion, since every consumer golden-tests against it
// (pkg/serializer/ultra_golden_test.go).
const UltraTableVersion = 1

var rootAbbrev = map[Root]string{
	RootMotion: "MOT", RootTransfer: "TRF", RootCommunication: "COM",
	RootCognition: "COG", RootPerception: "PCP", RootCreation: "CRE",
	RootDestruction: "DES", RootChange: "CHG", RootPossession: "PSS",
	RootIntention: "INT", RootExistence: "EXS",

	RootAttribution: "ATB", RootComparison: "CMP", RootContainment: "CTN",
	RootDecision: "DEC", RootEmotion: "EMO", RootEvaluation: "EVL",
	RootObservation: "OBS", RootProduction: "PRD", RootProhibition: "PRH",
	RootQuery: "QRY", RootRequest: "REQ", RootPermissionGrant: "PMG",
	RootSocialInteraction: "SOC", RootSupport: "SUP", RootConsumption: "CNS",
	RootAcquisition: "ACQ", RootBeginning: "BEG", RootEnding: "END",
	RootContinuation: "CNT", RootPrevention: "PVN", RootCausation: "CAU",
	RootAssistance: "AST", RootCompetition: "CPT", RootCooperation: "CPR",
	RootConflict: "CFL", RootJudgment: "JDG", RootBelief: "BEL",
	RootDesire: "DSR", RootFear: "FER", RootSurprise: "SRP",
	RootAgreement: "AGR", RootDisagreement: "DIS", RootPromise: "PRM",
	RootThreat: "THR", RootApology: "APL", RootGratitude: "GRT",
	RootGreeting: "GRE", RootFarewell: "FAR", RootNaming: "NAM",
	RootMeasurement: "MSR", RootCounting: "CNU", RootOrdering: "ORD",
	RootSelection: "SEL", RootExchange: "EXC", RootRepair: "REP",
	RootConstruction: "CST", RootTeaching: "TCH", RootLearning: "LRN",
	RootPerformance: "PRF", RootTravel: "TRV", RootWaiting: "WAI",
	RootSearching: "SRC", RootConcealment: "CNL",
}

var operatorAbbrev = map[Operator]string{
	OpPast: "P", OpPresent: "R", OpFuture: "F",
	OpContinuous: "C", OpCompleted: "D", OpHabitual: "H",
	OpNegation: "N", OpAffirmation: "X",
	OpPossible: "O", OpNecessary: "E", OpObligatory: "B", OpPermitted: "T",
	OpCausative: "U", OpSelfInitiated: "S", OpForced: "Z",
	OpDirectionIn: "I", OpDirectionOut: "Y", OpToward: "K", OpAway: "V",
}

var metaAbbrev = map[Meta]string{
	MetaAssertive: "A", MetaQuestion: "Q", MetaCommand: "C",
	MetaUncertain: "U", MetaEvidential: "E", MetaEmotive: "M", MetaIronic: "I",
}

// RootAbbrev returns the frozen ultra-compact code for root, and whether
// root was recognized.
func RootAbbrev(root Root) (string, bool) {
	v, ok := rootAbbrev[root]
	return v, ok
}

// OperatorAbbrev returns the frozen ultra-compact code for op.
func OperatorAbbrev(op Operator) (string, bool) {
	v, ok := operatorAbbrev[op]
	return v, ok
}

// MetaAbbrev returns the frozen ultra-compact code for m.
func MetaAbbrev(m Meta) (string, bool) {
	v, ok := metaAbbrev[m]
	return v, ok
}
