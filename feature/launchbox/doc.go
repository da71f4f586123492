// Package launchbox reads LaunchBox platform exports.
//
// A LaunchBox export is an XML document holding one <Game> element per title:
//
//	<LaunchBox>
//	  <Game>
//	    <Title>Wing Commander</Title>
//	    <DatabaseID>42</DatabaseID>
//	    <Id>1b3c0f4e-...</Id>
//	    <Publisher>Origin Systems</Publisher>
//	    <ReleaseDate>1990-09-26T00:00:00-07:00</ReleaseDate>
//	    <Genre>Flight Simulator; Action</Genre>
//	  </Game>
//	</LaunchBox>
//
// # Reconcile Adapter
//
// Adapter implements reconcile.Adapter. It turns every <Game> into a
// reconcile.Entry, trimmed and truncated to the launcher's field widths:
//
//   - Publisher keeps 30 characters, Year the first 4 of ReleaseDate.
//   - Genre keeps the first label of a ';' separated list.
//   - DatabaseID is 0 when missing or not numeric.
//   - Id (the LaunchBox GUID) keeps 36 characters.
//
// Games without a title are skipped. When a title repeats, the later game's
// metadata replaces the earlier one but keeps its position in the list.
package launchbox
