package output

// TSVHeader is the canonical header row for text/TSV outputs.
// Keep this as the single source of truth; all writers should use it.
const TSVHeader = "id\tlength\tis_hairpin\tdg\tloop_len\tloop_dg\tstem_len\tstem_dg\tmatch\tseq"
