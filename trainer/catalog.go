package trainer

// Catalog returns the full ordered topic table: for each string, the natural
// notes up to the 12th fret, then the same span with sharps, then with flats.
func Catalog() []Topic {
	return []Topic{
		NewTopic("Low E String Sans Sharps/Flats", []Note{
			mustNote(40, "E", -5), mustNote(41, "F", -4), mustNote(43, "G", -3), mustNote(45, "A", -2),
			mustNote(47, "B", -1), mustNote(48, "C", 0), mustNote(50, "D", 1), mustNote(52, "E", 2),
		}),
		NewTopic("Low E String Incl Sharps", []Note{
			mustNote(40, "E", -5), mustNote(41, "F", -4), mustNote(42, "F#", -4), mustNote(43, "G", -3),
			mustNote(44, "G#", -3), mustNote(45, "A", -2), mustNote(46, "A#", -2), mustNote(47, "B", -1),
			mustNote(48, "C", 0), mustNote(49, "C#", 0), mustNote(50, "D", 1), mustNote(51, "D#", 1),
			mustNote(52, "E", 2),
		}),
		NewTopic("Low E String Incl Flats", []Note{
			mustNote(40, "E", -5), mustNote(41, "F", -4), mustNote(42, "Gb", -3), mustNote(43, "G", -3),
			mustNote(44, "Ab", -2), mustNote(45, "A", -2), mustNote(46, "Bb", -1), mustNote(47, "B", -1),
			mustNote(48, "C", 0), mustNote(49, "Db", 1), mustNote(50, "D", 1), mustNote(51, "Eb", 2),
			mustNote(52, "E", 2),
		}),
		NewTopic("A String Sans Sharps/Flats", []Note{
			mustNote(45, "A", -2), mustNote(47, "B", -1), mustNote(48, "C", 0), mustNote(50, "D", 1),
			mustNote(52, "E", 2), mustNote(53, "F", 3), mustNote(55, "G", 4), mustNote(57, "A", 5),
		}),
		NewTopic("A String Incl Sharps", []Note{
			mustNote(45, "A", -2), mustNote(46, "A#", -2), mustNote(47, "B", -1), mustNote(48, "C", 0),
			mustNote(49, "C#", 0), mustNote(50, "D", 1), mustNote(51, "D#", 1), mustNote(52, "E", 2),
			mustNote(53, "F", 3), mustNote(54, "F#", 3), mustNote(55, "G", 4), mustNote(56, "G#", 4),
			mustNote(57, "A", 5),
		}),
		NewTopic("A String Incl Flats", []Note{
			mustNote(45, "A", -2), mustNote(46, "Bb", -1), mustNote(47, "B", -1), mustNote(48, "C", 0),
			mustNote(49, "Db", 1), mustNote(50, "D", 1), mustNote(51, "Eb", 2), mustNote(52, "E", 2),
			mustNote(53, "F", 3), mustNote(54, "Gb", 4), mustNote(55, "G", 4), mustNote(56, "Ab", 5),
			mustNote(57, "A", 5),
		}),
		NewTopic("D String Sans Sharps/Flats", []Note{
			mustNote(50, "D", 1), mustNote(52, "E", 2), mustNote(53, "F", 3), mustNote(55, "G", 4),
			mustNote(57, "A", 5), mustNote(59, "B", 6), mustNote(60, "C", 7), mustNote(62, "D", 8),
		}),
		NewTopic("D String Incl Sharps", []Note{
			mustNote(50, "D", 1), mustNote(51, "D#", 1), mustNote(52, "E", 2), mustNote(53, "F", 3),
			mustNote(54, "F#", 3), mustNote(55, "G", 4), mustNote(56, "G#", 4), mustNote(57, "A", 5),
			mustNote(58, "A#", 5), mustNote(59, "B", 6), mustNote(60, "C", 7), mustNote(61, "C#", 7),
			mustNote(62, "D", 8),
		}),
		NewTopic("D String Incl Flats", []Note{
			mustNote(50, "D", 1), mustNote(51, "Eb", 2), mustNote(52, "E", 2), mustNote(53, "F", 3),
			mustNote(54, "Gb", 4), mustNote(55, "G", 4), mustNote(56, "Ab", 5), mustNote(57, "A", 5),
			mustNote(58, "Bb", 6), mustNote(59, "B", 6), mustNote(60, "C", 7), mustNote(61, "Db", 8),
			mustNote(62, "D", 8),
		}),
		NewTopic("G String Sans Sharps/Flats", []Note{
			mustNote(55, "G", 4), mustNote(57, "A", 5), mustNote(59, "B", 6), mustNote(60, "C", 7),
			mustNote(62, "D", 8), mustNote(64, "E", 9), mustNote(65, "F", 10), mustNote(67, "G", 11),
		}),
		NewTopic("G String Incl Sharps", []Note{
			mustNote(55, "G", 4), mustNote(56, "G#", 4), mustNote(57, "A", 5), mustNote(58, "A#", 5),
			mustNote(59, "B", 6), mustNote(60, "C", 7), mustNote(61, "C#", 7), mustNote(62, "D", 8),
			mustNote(63, "D#", 8), mustNote(64, "E", 9), mustNote(65, "F", 10), mustNote(66, "F#", 10),
			mustNote(67, "G", 11),
		}),
		NewTopic("G String Incl Flats", []Note{
			mustNote(55, "G", 4), mustNote(56, "Ab", 5), mustNote(57, "A", 5), mustNote(58, "Bb", 6),
			mustNote(59, "B", 6), mustNote(60, "C", 7), mustNote(61, "Db", 8), mustNote(62, "D", 8),
			mustNote(63, "Eb", 9), mustNote(64, "E", 9), mustNote(65, "F", 10), mustNote(66, "Gb", 11),
			mustNote(67, "G", 11),
		}),
		NewTopic("B String Sans Sharps/Flats", []Note{
			mustNote(59, "B", 6), mustNote(60, "C", 7), mustNote(62, "D", 8), mustNote(64, "E", 9),
			mustNote(65, "F", 10), mustNote(67, "G", 11), mustNote(69, "A", 12), mustNote(71, "B", 13),
		}),
		NewTopic("B String Incl Sharps", []Note{
			mustNote(59, "B", 6), mustNote(60, "C", 7), mustNote(61, "C#", 7), mustNote(62, "D", 8),
			mustNote(63, "D#", 8), mustNote(64, "E", 9), mustNote(65, "F", 10), mustNote(66, "F#", 10),
			mustNote(67, "G", 11), mustNote(68, "G#", 11), mustNote(69, "A", 12), mustNote(70, "A#", 12),
			mustNote(71, "B", 13),
		}),
		NewTopic("B String Incl Flats", []Note{
			mustNote(59, "B", 6), mustNote(60, "C", 7), mustNote(61, "Db", 8), mustNote(62, "D", 8),
			mustNote(63, "Eb", 9), mustNote(64, "E", 9), mustNote(65, "F", 10), mustNote(66, "Gb", 11),
			mustNote(67, "G", 11), mustNote(68, "Ab", 12), mustNote(69, "A", 12), mustNote(70, "Bb", 13),
			mustNote(71, "B", 13),
		}),
		NewTopic("High E String Sans Sharps/Flats", []Note{
			mustNote(64, "E", 9), mustNote(65, "F", 10), mustNote(67, "G", 11), mustNote(69, "A", 12),
			mustNote(71, "B", 13), mustNote(72, "C", 14), mustNote(74, "D", 15), mustNote(76, "E", 16),
		}),
		NewTopic("High E String Incl Sharps", []Note{
			mustNote(64, "E", 9), mustNote(65, "F", 10), mustNote(66, "F#", 10), mustNote(67, "G", 11),
			mustNote(68, "G#", 11), mustNote(69, "A", 12), mustNote(70, "A#", 12), mustNote(71, "B", 13),
			mustNote(72, "C", 14), mustNote(73, "C#", 14), mustNote(74, "D", 15), mustNote(75, "D#", 15),
			mustNote(76, "E", 16),
		}),
		NewTopic("High E String Incl Flats", []Note{
			mustNote(64, "E", 9), mustNote(65, "F", 10), mustNote(66, "Gb", 11), mustNote(67, "G", 11),
			mustNote(68, "Ab", 12), mustNote(69, "A", 12), mustNote(70, "Bb", 13), mustNote(71, "B", 13),
			mustNote(72, "C", 14), mustNote(73, "Db", 15), mustNote(74, "D", 15), mustNote(75, "Eb", 16),
			mustNote(76, "E", 16),
		}),
	}
}
