package launchbox

// gameXML mirrors the <Game> children the importer reads.
type gameXML struct {
	Title       string `xml:"Title"`
	DatabaseID  string `xml:"DatabaseID"`
	ID          string `xml:"Id"`
	Publisher   string `xml:"Publisher"`
	ReleaseDate string `xml:"ReleaseDate"`
	Genre       string `xml:"Genre"`
}

// Stats counts what happened while reading an export.
type Stats struct {
	Games        int `json:"games"`
	Entries      int `json:"entries"`
	Untitled     int `json:"untitled"`
	Duplicates   int `json:"duplicates"`
	InvalidIDs   int `json:"invalid_ids"`
	InvalidGUIDs int `json:"invalid_guids"`
}
