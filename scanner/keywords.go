package scanner

// KeywordCategory classifies a PostgreSQL keyword for the benefit of a
// downstream grammar that needs to know whether it may be used bare as a
// column label, a type/function name, or not at all.
//
// Categories, from the PostgreSQL 17 keyword appendix:
//
//	R: reserved, cannot be used as an identifier
//	T: reserved, but may be a function or type name
//	C: unreserved, but may not be a function or type name
//	U: fully unreserved
type KeywordCategory string

const (
	CategoryReserved   KeywordCategory = "R"
	CategoryTypeFunc   KeywordCategory = "T"
	CategoryColName    KeywordCategory = "C"
	CategoryUnreserved KeywordCategory = "U"
)

// KeywordInfo is what KeywordResolver.Lookup returns for a recognized word.
type KeywordInfo struct {
	Canonical    string
	Category     KeywordCategory
	CanBareLabel bool
}

// KeywordResolver is the collaborator interface the scanner calls through
// to classify a folded identifier. Swappable so a caller can plug in a
// different keyword set (an older server version, say) without touching
// the scanner itself.
type KeywordResolver interface {
	Lookup(lower string) (KeywordInfo, bool)
}

// DefaultKeywords is the PostgreSQL 17 keyword table, generated from
// pg_get_keywords() output (see postgresql.org/docs/17/sql-keywords-appendix.html).
var DefaultKeywords KeywordResolver = mapKeywordResolver(allKeywords)

type mapKeywordResolver map[string]KeywordInfo

func (m mapKeywordResolver) Lookup(lower string) (KeywordInfo, bool) {
	info, ok := m[lower]
	return info, ok
}

var allKeywords = map[string]KeywordInfo{
	// A
	"abort": {"abort", CategoryUnreserved, true}, "absent": {"absent", CategoryUnreserved, true},
	"absolute": {"absolute", CategoryUnreserved, true}, "access": {"access", CategoryUnreserved, true},
	"action": {"action", CategoryUnreserved, true}, "add": {"add", CategoryUnreserved, true},
	"admin": {"admin", CategoryUnreserved, true}, "after": {"after", CategoryUnreserved, true},
	"aggregate": {"aggregate", CategoryUnreserved, true}, "all": {"all", CategoryReserved, true},
	"also": {"also", CategoryUnreserved, true}, "alter": {"alter", CategoryUnreserved, true},
	"always": {"always", CategoryUnreserved, true}, "analyse": {"analyse", CategoryReserved, true},
	"analyze": {"analyze", CategoryReserved, true}, "and": {"and", CategoryReserved, true},
	"any": {"any", CategoryReserved, true}, "array": {"array", CategoryReserved, false},
	"as": {"as", CategoryReserved, false}, "asc": {"asc", CategoryReserved, true},
	"asensitive": {"asensitive", CategoryUnreserved, true}, "assertion": {"assertion", CategoryUnreserved, true},
	"assignment": {"assignment", CategoryUnreserved, true}, "asymmetric": {"asymmetric", CategoryReserved, true},
	"at": {"at", CategoryUnreserved, true}, "atomic": {"atomic", CategoryUnreserved, true},
	"attach": {"attach", CategoryUnreserved, true}, "attribute": {"attribute", CategoryUnreserved, true},
	"authorization": {"authorization", CategoryTypeFunc, true},

	// B
	"backward": {"backward", CategoryUnreserved, true}, "before": {"before", CategoryUnreserved, true},
	"begin": {"begin", CategoryUnreserved, true}, "between": {"between", CategoryColName, true},
	"bigint": {"bigint", CategoryColName, true}, "binary": {"binary", CategoryTypeFunc, true},
	"bit": {"bit", CategoryColName, true}, "boolean": {"boolean", CategoryColName, true},
	"both": {"both", CategoryReserved, true}, "breadth": {"breadth", CategoryUnreserved, true},
	"by": {"by", CategoryUnreserved, true},

	// C
	"cache": {"cache", CategoryUnreserved, true}, "call": {"call", CategoryUnreserved, true},
	"called": {"called", CategoryUnreserved, true}, "cascade": {"cascade", CategoryUnreserved, true},
	"cascaded": {"cascaded", CategoryUnreserved, true}, "case": {"case", CategoryReserved, true},
	"cast": {"cast", CategoryReserved, true}, "catalog": {"catalog", CategoryUnreserved, true},
	"chain": {"chain", CategoryUnreserved, true}, "char": {"char", CategoryColName, false},
	"character": {"character", CategoryColName, false}, "characteristics": {"characteristics", CategoryUnreserved, true},
	"check": {"check", CategoryReserved, true}, "checkpoint": {"checkpoint", CategoryUnreserved, true},
	"class": {"class", CategoryUnreserved, true}, "close": {"close", CategoryUnreserved, true},
	"cluster": {"cluster", CategoryUnreserved, true}, "coalesce": {"coalesce", CategoryColName, true},
	"collate": {"collate", CategoryReserved, true}, "collation": {"collation", CategoryTypeFunc, true},
	"column": {"column", CategoryReserved, true}, "columns": {"columns", CategoryUnreserved, true},
	"comment": {"comment", CategoryUnreserved, true}, "comments": {"comments", CategoryUnreserved, true},
	"commit": {"commit", CategoryUnreserved, true}, "committed": {"committed", CategoryUnreserved, true},
	"compression": {"compression", CategoryUnreserved, true}, "concurrently": {"concurrently", CategoryTypeFunc, true},
	"conditional": {"conditional", CategoryUnreserved, true}, "configuration": {"configuration", CategoryUnreserved, true},
	"conflict": {"conflict", CategoryUnreserved, true}, "connection": {"connection", CategoryUnreserved, true},
	"constraint": {"constraint", CategoryReserved, true}, "constraints": {"constraints", CategoryUnreserved, true},
	"content": {"content", CategoryUnreserved, true}, "continue": {"continue", CategoryUnreserved, true},
	"conversion": {"conversion", CategoryUnreserved, true}, "copy": {"copy", CategoryUnreserved, true},
	"cost": {"cost", CategoryUnreserved, true}, "create": {"create", CategoryReserved, false},
	"cross": {"cross", CategoryTypeFunc, true}, "csv": {"csv", CategoryUnreserved, true},
	"cube": {"cube", CategoryUnreserved, true}, "current": {"current", CategoryUnreserved, true},
	"current_catalog": {"current_catalog", CategoryReserved, true}, "current_date": {"current_date", CategoryReserved, true},
	"current_role": {"current_role", CategoryReserved, true}, "current_schema": {"current_schema", CategoryTypeFunc, true},
	"current_time": {"current_time", CategoryReserved, true}, "current_timestamp": {"current_timestamp", CategoryReserved, true},
	"current_user": {"current_user", CategoryReserved, true}, "cursor": {"cursor", CategoryUnreserved, true},
	"cycle": {"cycle", CategoryUnreserved, true},

	// D
	"data": {"data", CategoryUnreserved, true}, "database": {"database", CategoryUnreserved, true},
	"day": {"day", CategoryUnreserved, false}, "deallocate": {"deallocate", CategoryUnreserved, true},
	"dec": {"dec", CategoryColName, true}, "decimal": {"decimal", CategoryColName, true},
	"declare": {"declare", CategoryUnreserved, true}, "default": {"default", CategoryReserved, true},
	"defaults": {"defaults", CategoryUnreserved, true}, "deferrable": {"deferrable", CategoryReserved, true},
	"deferred": {"deferred", CategoryUnreserved, true}, "definer": {"definer", CategoryUnreserved, true},
	"delete": {"delete", CategoryUnreserved, true}, "delimiter": {"delimiter", CategoryUnreserved, true},
	"delimiters": {"delimiters", CategoryUnreserved, true}, "depends": {"depends", CategoryUnreserved, true},
	"depth": {"depth", CategoryUnreserved, true}, "desc": {"desc", CategoryReserved, true},
	"detach": {"detach", CategoryUnreserved, true}, "dictionary": {"dictionary", CategoryUnreserved, true},
	"disable": {"disable", CategoryUnreserved, true}, "discard": {"discard", CategoryUnreserved, true},
	"distinct": {"distinct", CategoryReserved, true}, "do": {"do", CategoryReserved, true},
	"document": {"document", CategoryUnreserved, true}, "domain": {"domain", CategoryUnreserved, true},
	"double": {"double", CategoryUnreserved, true}, "drop": {"drop", CategoryUnreserved, true},

	// E
	"each": {"each", CategoryUnreserved, true}, "else": {"else", CategoryReserved, true},
	"empty": {"empty", CategoryUnreserved, true}, "enable": {"enable", CategoryUnreserved, true},
	"encoding": {"encoding", CategoryUnreserved, true}, "encrypted": {"encrypted", CategoryUnreserved, true},
	"end": {"end", CategoryReserved, true}, "enforced": {"enforced", CategoryUnreserved, true},
	"enum": {"enum", CategoryUnreserved, true}, "error": {"error", CategoryUnreserved, true},
	"escape": {"escape", CategoryUnreserved, true}, "event": {"event", CategoryUnreserved, true},
	"except": {"except", CategoryReserved, false}, "exclude": {"exclude", CategoryUnreserved, true},
	"excluding": {"excluding", CategoryUnreserved, true}, "exclusive": {"exclusive", CategoryUnreserved, true},
	"execute": {"execute", CategoryUnreserved, true}, "exists": {"exists", CategoryColName, true},
	"explain": {"explain", CategoryUnreserved, true}, "expression": {"expression", CategoryUnreserved, true},
	"extension": {"extension", CategoryUnreserved, true}, "external": {"external", CategoryUnreserved, true},
	"extract": {"extract", CategoryColName, true},

	// F
	"false": {"false", CategoryReserved, true}, "family": {"family", CategoryUnreserved, true},
	"fetch": {"fetch", CategoryReserved, false}, "filter": {"filter", CategoryUnreserved, false},
	"finalize": {"finalize", CategoryUnreserved, true}, "first": {"first", CategoryUnreserved, true},
	"float": {"float", CategoryColName, true}, "following": {"following", CategoryUnreserved, true},
	"for": {"for", CategoryReserved, false}, "force": {"force", CategoryUnreserved, true},
	"foreign": {"foreign", CategoryReserved, true}, "format": {"format", CategoryUnreserved, true},
	"forward": {"forward", CategoryUnreserved, true}, "freeze": {"freeze", CategoryTypeFunc, true},
	"from": {"from", CategoryReserved, false}, "full": {"full", CategoryTypeFunc, true},
	"function": {"function", CategoryUnreserved, true}, "functions": {"functions", CategoryUnreserved, true},

	// G
	"generated": {"generated", CategoryUnreserved, true}, "global": {"global", CategoryUnreserved, true},
	"grant": {"grant", CategoryReserved, false}, "granted": {"granted", CategoryUnreserved, true},
	"greatest": {"greatest", CategoryColName, true}, "group": {"group", CategoryReserved, false},
	"grouping": {"grouping", CategoryColName, true}, "groups": {"groups", CategoryUnreserved, true},

	// H
	"handler": {"handler", CategoryUnreserved, true}, "having": {"having", CategoryReserved, false},
	"header": {"header", CategoryUnreserved, true}, "hold": {"hold", CategoryUnreserved, true},
	"hour": {"hour", CategoryUnreserved, false},

	// I
	"identity": {"identity", CategoryUnreserved, true}, "if": {"if", CategoryUnreserved, true},
	"ilike": {"ilike", CategoryTypeFunc, true}, "immediate": {"immediate", CategoryUnreserved, true},
	"immutable": {"immutable", CategoryUnreserved, true}, "implicit": {"implicit", CategoryUnreserved, true},
	"import": {"import", CategoryUnreserved, true}, "in": {"in", CategoryReserved, true},
	"include": {"include", CategoryUnreserved, true}, "including": {"including", CategoryUnreserved, true},
	"increment": {"increment", CategoryUnreserved, true}, "indent": {"indent", CategoryUnreserved, true},
	"index": {"index", CategoryUnreserved, true}, "indexes": {"indexes", CategoryUnreserved, true},
	"inherit": {"inherit", CategoryUnreserved, true}, "inherits": {"inherits", CategoryUnreserved, true},
	"initially": {"initially", CategoryReserved, true}, "inline": {"inline", CategoryUnreserved, true},
	"inner": {"inner", CategoryTypeFunc, true}, "inout": {"inout", CategoryColName, true},
	"input": {"input", CategoryUnreserved, true}, "insensitive": {"insensitive", CategoryUnreserved, true},
	"insert": {"insert", CategoryUnreserved, true}, "instead": {"instead", CategoryUnreserved, true},
	"int": {"int", CategoryColName, true}, "integer": {"integer", CategoryColName, true},
	"intersect": {"intersect", CategoryReserved, false}, "interval": {"interval", CategoryColName, true},
	"into": {"into", CategoryReserved, false}, "invoker": {"invoker", CategoryUnreserved, true},
	"is": {"is", CategoryTypeFunc, true}, "isnull": {"isnull", CategoryTypeFunc, false},
	"isolation": {"isolation", CategoryUnreserved, true},

	// J
	"join": {"join", CategoryTypeFunc, true}, "json": {"json", CategoryColName, true},
	"json_array": {"json_array", CategoryColName, true}, "json_arrayagg": {"json_arrayagg", CategoryColName, true},
	"json_exists": {"json_exists", CategoryColName, true}, "json_object": {"json_object", CategoryColName, true},
	"json_objectagg": {"json_objectagg", CategoryColName, true}, "json_query": {"json_query", CategoryColName, true},
	"json_scalar": {"json_scalar", CategoryColName, true}, "json_serialize": {"json_serialize", CategoryColName, true},
	"json_table": {"json_table", CategoryColName, true}, "json_value": {"json_value", CategoryColName, true},

	// K
	"keep": {"keep", CategoryUnreserved, true}, "key": {"key", CategoryUnreserved, true},
	"keys": {"keys", CategoryUnreserved, true},

	// L
	"label": {"label", CategoryUnreserved, true}, "language": {"language", CategoryUnreserved, true},
	"large": {"large", CategoryUnreserved, true}, "last": {"last", CategoryUnreserved, true},
	"lateral": {"lateral", CategoryReserved, true}, "leading": {"leading", CategoryReserved, true},
	"leakproof": {"leakproof", CategoryUnreserved, true}, "least": {"least", CategoryColName, true},
	"left": {"left", CategoryTypeFunc, true}, "level": {"level", CategoryUnreserved, true},
	"like": {"like", CategoryTypeFunc, true}, "limit": {"limit", CategoryReserved, false},
	"listen": {"listen", CategoryUnreserved, true}, "load": {"load", CategoryUnreserved, true},
	"local": {"local", CategoryUnreserved, true}, "localtime": {"localtime", CategoryReserved, true},
	"localtimestamp": {"localtimestamp", CategoryReserved, true}, "location": {"location", CategoryUnreserved, true},
	"lock": {"lock", CategoryUnreserved, true}, "locked": {"locked", CategoryUnreserved, true},
	"logged": {"logged", CategoryUnreserved, true},

	// M
	"mapping": {"mapping", CategoryUnreserved, true}, "match": {"match", CategoryUnreserved, true},
	"matched": {"matched", CategoryUnreserved, true}, "materialized": {"materialized", CategoryUnreserved, true},
	"maxvalue": {"maxvalue", CategoryUnreserved, true}, "merge": {"merge", CategoryUnreserved, true},
	"merge_action": {"merge_action", CategoryColName, true}, "method": {"method", CategoryUnreserved, true},
	"minute": {"minute", CategoryUnreserved, false}, "minvalue": {"minvalue", CategoryUnreserved, true},
	"mode": {"mode", CategoryUnreserved, true}, "month": {"month", CategoryUnreserved, false},
	"move": {"move", CategoryUnreserved, true},

	// N
	"name": {"name", CategoryUnreserved, true}, "names": {"names", CategoryUnreserved, true},
	"national": {"national", CategoryColName, true}, "natural": {"natural", CategoryTypeFunc, true},
	"nchar": {"nchar", CategoryColName, true}, "nested": {"nested", CategoryUnreserved, true},
	"new": {"new", CategoryUnreserved, true}, "next": {"next", CategoryUnreserved, true},
	"nfc": {"nfc", CategoryUnreserved, true}, "nfd": {"nfd", CategoryUnreserved, true},
	"nfkc": {"nfkc", CategoryUnreserved, true}, "nfkd": {"nfkd", CategoryUnreserved, true},
	"no": {"no", CategoryUnreserved, true}, "none": {"none", CategoryColName, true},
	"normalize": {"normalize", CategoryColName, true}, "normalized": {"normalized", CategoryUnreserved, true},
	"not": {"not", CategoryReserved, true}, "nothing": {"nothing", CategoryUnreserved, true},
	"notify": {"notify", CategoryUnreserved, true}, "notnull": {"notnull", CategoryTypeFunc, false},
	"nowait": {"nowait", CategoryUnreserved, true}, "null": {"null", CategoryReserved, true},
	"nullif": {"nullif", CategoryColName, true}, "nulls": {"nulls", CategoryUnreserved, true},
	"numeric": {"numeric", CategoryColName, true},

	// O
	"object": {"object", CategoryUnreserved, true}, "objects": {"objects", CategoryUnreserved, true},
	"of": {"of", CategoryUnreserved, true}, "off": {"off", CategoryUnreserved, true},
	"offset": {"offset", CategoryReserved, false}, "oids": {"oids", CategoryUnreserved, true},
	"old": {"old", CategoryUnreserved, true}, "omit": {"omit", CategoryUnreserved, true},
	"on": {"on", CategoryReserved, false}, "only": {"only", CategoryReserved, true},
	"operator": {"operator", CategoryUnreserved, true}, "option": {"option", CategoryUnreserved, true},
	"options": {"options", CategoryUnreserved, true}, "or": {"or", CategoryReserved, true},
	"order": {"order", CategoryReserved, false}, "ordinality": {"ordinality", CategoryUnreserved, true},
	"others": {"others", CategoryUnreserved, true}, "out": {"out", CategoryColName, true},
	"outer": {"outer", CategoryTypeFunc, true}, "over": {"over", CategoryUnreserved, false},
	"overlaps": {"overlaps", CategoryTypeFunc, false}, "overlay": {"overlay", CategoryColName, true},
	"overriding": {"overriding", CategoryUnreserved, true}, "owned": {"owned", CategoryUnreserved, true},
	"owner": {"owner", CategoryUnreserved, true},

	// P
	"parallel": {"parallel", CategoryUnreserved, true}, "parameter": {"parameter", CategoryUnreserved, true},
	"parser": {"parser", CategoryUnreserved, true}, "partial": {"partial", CategoryUnreserved, true},
	"partition": {"partition", CategoryUnreserved, true}, "passing": {"passing", CategoryUnreserved, true},
	"password": {"password", CategoryUnreserved, true}, "path": {"path", CategoryUnreserved, true},
	"period": {"period", CategoryUnreserved, true}, "placing": {"placing", CategoryReserved, true},
	"plan": {"plan", CategoryUnreserved, true}, "plans": {"plans", CategoryUnreserved, true},
	"policy": {"policy", CategoryUnreserved, true}, "position": {"position", CategoryColName, true},
	"preceding": {"preceding", CategoryUnreserved, true}, "precision": {"precision", CategoryColName, false},
	"prepare": {"prepare", CategoryUnreserved, true}, "prepared": {"prepared", CategoryUnreserved, true},
	"preserve": {"preserve", CategoryUnreserved, true}, "primary": {"primary", CategoryReserved, true},
	"prior": {"prior", CategoryUnreserved, true}, "privileges": {"privileges", CategoryUnreserved, true},
	"procedural": {"procedural", CategoryUnreserved, true}, "procedure": {"procedure", CategoryUnreserved, true},
	"procedures": {"procedures", CategoryUnreserved, true}, "program": {"program", CategoryUnreserved, true},
	"publication": {"publication", CategoryUnreserved, true},

	// Q
	"quote": {"quote", CategoryUnreserved, true}, "quotes": {"quotes", CategoryUnreserved, true},

	// R
	"range": {"range", CategoryUnreserved, true}, "read": {"read", CategoryUnreserved, true},
	"real": {"real", CategoryColName, true}, "reassign": {"reassign", CategoryUnreserved, true},
	"recursive": {"recursive", CategoryUnreserved, true}, "ref": {"ref", CategoryUnreserved, true},
	"references": {"references", CategoryReserved, true}, "referencing": {"referencing", CategoryUnreserved, true},
	"refresh": {"refresh", CategoryUnreserved, true}, "reindex": {"reindex", CategoryUnreserved, true},
	"relative": {"relative", CategoryUnreserved, true}, "release": {"release", CategoryUnreserved, true},
	"rename": {"rename", CategoryUnreserved, true}, "repeatable": {"repeatable", CategoryUnreserved, true},
	"replace": {"replace", CategoryUnreserved, true}, "replica": {"replica", CategoryUnreserved, true},
	"reset": {"reset", CategoryUnreserved, true}, "restart": {"restart", CategoryUnreserved, true},
	"restrict": {"restrict", CategoryUnreserved, true}, "return": {"return", CategoryUnreserved, true},
	"returning": {"returning", CategoryReserved, false}, "returns": {"returns", CategoryUnreserved, true},
	"revoke": {"revoke", CategoryUnreserved, true}, "right": {"right", CategoryTypeFunc, true},
	"role": {"role", CategoryUnreserved, true}, "rollback": {"rollback", CategoryUnreserved, true},
	"rollup": {"rollup", CategoryUnreserved, true}, "routine": {"routine", CategoryUnreserved, true},
	"routines": {"routines", CategoryUnreserved, true}, "row": {"row", CategoryColName, true},
	"rows": {"rows", CategoryUnreserved, true}, "rule": {"rule", CategoryUnreserved, true},

	// S
	"savepoint": {"savepoint", CategoryUnreserved, true}, "scalar": {"scalar", CategoryUnreserved, true},
	"schema": {"schema", CategoryUnreserved, true}, "schemas": {"schemas", CategoryUnreserved, true},
	"scroll": {"scroll", CategoryUnreserved, true}, "search": {"search", CategoryUnreserved, true},
	"second": {"second", CategoryUnreserved, false}, "security": {"security", CategoryUnreserved, true},
	"select": {"select", CategoryReserved, true}, "sequence": {"sequence", CategoryUnreserved, true},
	"sequences": {"sequences", CategoryUnreserved, true}, "serializable": {"serializable", CategoryUnreserved, true},
	"server": {"server", CategoryUnreserved, true}, "session": {"session", CategoryUnreserved, true},
	"session_user": {"session_user", CategoryReserved, true}, "set": {"set", CategoryUnreserved, true},
	"setof": {"setof", CategoryColName, true}, "sets": {"sets", CategoryUnreserved, true},
	"share": {"share", CategoryUnreserved, true}, "show": {"show", CategoryUnreserved, true},
	"similar": {"similar", CategoryTypeFunc, true}, "simple": {"simple", CategoryUnreserved, true},
	"skip": {"skip", CategoryUnreserved, true}, "smallint": {"smallint", CategoryColName, true},
	"snapshot": {"snapshot", CategoryUnreserved, true}, "some": {"some", CategoryReserved, true},
	"source": {"source", CategoryUnreserved, true}, "sql": {"sql", CategoryUnreserved, true},
	"stable": {"stable", CategoryUnreserved, true}, "standalone": {"standalone", CategoryUnreserved, true},
	"start": {"start", CategoryUnreserved, true}, "statement": {"statement", CategoryUnreserved, true},
	"statistics": {"statistics", CategoryUnreserved, true}, "stdin": {"stdin", CategoryUnreserved, true},
	"stdout": {"stdout", CategoryUnreserved, true}, "storage": {"storage", CategoryUnreserved, true},
	"stored": {"stored", CategoryUnreserved, true}, "strict": {"strict", CategoryUnreserved, true},
	"string": {"string", CategoryUnreserved, true}, "strip": {"strip", CategoryUnreserved, true},
	"subscription": {"subscription", CategoryUnreserved, true}, "substring": {"substring", CategoryColName, true},
	"support": {"support", CategoryUnreserved, true}, "symmetric": {"symmetric", CategoryReserved, true},
	"sysid": {"sysid", CategoryUnreserved, true}, "system": {"system", CategoryUnreserved, true},
	"system_user": {"system_user", CategoryReserved, true},

	// T
	"table": {"table", CategoryReserved, true}, "tables": {"tables", CategoryUnreserved, true},
	"tablesample": {"tablesample", CategoryTypeFunc, true}, "tablespace": {"tablespace", CategoryUnreserved, true},
	"target": {"target", CategoryUnreserved, true}, "temp": {"temp", CategoryUnreserved, true},
	"template": {"template", CategoryUnreserved, true}, "temporary": {"temporary", CategoryUnreserved, true},
	"text": {"text", CategoryUnreserved, true}, "then": {"then", CategoryReserved, true},
	"ties": {"ties", CategoryUnreserved, true}, "time": {"time", CategoryColName, true},
	"timestamp": {"timestamp", CategoryColName, true}, "to": {"to", CategoryReserved, false},
	"trailing": {"trailing", CategoryReserved, true}, "transaction": {"transaction", CategoryUnreserved, true},
	"transform": {"transform", CategoryUnreserved, true}, "treat": {"treat", CategoryColName, true},
	"trigger": {"trigger", CategoryUnreserved, true}, "trim": {"trim", CategoryColName, true},
	"true": {"true", CategoryReserved, true}, "truncate": {"truncate", CategoryUnreserved, true},
	"trusted": {"trusted", CategoryUnreserved, true}, "type": {"type", CategoryUnreserved, true},
	"types": {"types", CategoryUnreserved, true},

	// U
	"uescape": {"uescape", CategoryUnreserved, true}, "unbounded": {"unbounded", CategoryUnreserved, true},
	"uncommitted": {"uncommitted", CategoryUnreserved, true}, "unconditional": {"unconditional", CategoryUnreserved, true},
	"unencrypted": {"unencrypted", CategoryUnreserved, true}, "union": {"union", CategoryReserved, false},
	"unique": {"unique", CategoryReserved, true}, "unknown": {"unknown", CategoryUnreserved, true},
	"unlisten": {"unlisten", CategoryUnreserved, true}, "unlogged": {"unlogged", CategoryUnreserved, true},
	"until": {"until", CategoryUnreserved, true}, "update": {"update", CategoryUnreserved, true},
	"user": {"user", CategoryReserved, true}, "using": {"using", CategoryReserved, true},

	// V
	"vacuum": {"vacuum", CategoryUnreserved, true}, "valid": {"valid", CategoryUnreserved, true},
	"validate": {"validate", CategoryUnreserved, true}, "validator": {"validator", CategoryUnreserved, true},
	"value": {"value", CategoryUnreserved, true}, "values": {"values", CategoryColName, true},
	"varchar": {"varchar", CategoryColName, true}, "variadic": {"variadic", CategoryReserved, true},
	"varying": {"varying", CategoryUnreserved, false}, "verbose": {"verbose", CategoryTypeFunc, true},
	"version": {"version", CategoryUnreserved, true}, "view": {"view", CategoryUnreserved, true},
	"views": {"views", CategoryUnreserved, true}, "virtual": {"virtual", CategoryUnreserved, true},
	"volatile": {"volatile", CategoryUnreserved, true},

	// W
	"when": {"when", CategoryReserved, true}, "where": {"where", CategoryReserved, false},
	"whitespace": {"whitespace", CategoryUnreserved, true}, "window": {"window", CategoryReserved, false},
	"with": {"with", CategoryReserved, false}, "within": {"within", CategoryUnreserved, false},
	"without": {"without", CategoryUnreserved, false}, "work": {"work", CategoryUnreserved, true},
	"wrapper": {"wrapper", CategoryUnreserved, true}, "write": {"write", CategoryUnreserved, true},

	// X
	"xml": {"xml", CategoryUnreserved, true}, "xmlattributes": {"xmlattributes", CategoryColName, true},
	"xmlconcat": {"xmlconcat", CategoryColName, true}, "xmlelement": {"xmlelement", CategoryColName, true},
	"xmlexists": {"xmlexists", CategoryColName, true}, "xmlforest": {"xmlforest", CategoryColName, true},
	"xmlnamespaces": {"xmlnamespaces", CategoryColName, true}, "xmlparse": {"xmlparse", CategoryColName, true},
	"xmlpi": {"xmlpi", CategoryColName, true}, "xmlroot": {"xmlroot", CategoryColName, true},
	"xmlserialize": {"xmlserialize", CategoryColName, true}, "xmltable": {"xmltable", CategoryColName, true},

	// Y
	"year": {"year", CategoryUnreserved, false}, "yes": {"yes", CategoryUnreserved, true},

	// Z
	"zone": {"zone", CategoryUnreserved, true},
}
