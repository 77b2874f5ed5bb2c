package render

// glyphRows and glyphCols give the size of one character cell.
const (
	glyphCols = 5
	glyphRows = 7
)

// Glyph is one 5x7 character bitmap, top row first. '#' marks a lit pixel.
type Glyph [glyphRows]string

// glyphs covers printable ASCII, indexed by c - ' '.
var glyphs = [95]Glyph{
	{".....", ".....", ".....", ".....", ".....", ".....", "....."}, // space
	{"..#..", "..#..", "..#..", "..#..", "..#..", ".....", "..#.."}, // !
	{".#.#.", ".#.#.", ".....", ".....", ".....", ".....", "....."}, // "
	{".#.#.", ".#.#.", "#####", ".#.#.", "#####", ".#.#.", ".#.#."}, // #
	{"..#..", ".####", "#.#..", ".###.", "..#.#", "####.", "..#.."}, // $
	{"##...", "##..#", "...#.", "..#..", ".#...", "#..##", "...##"}, // %
	{".###.", "#..#.", "#.#..", ".#...", "#.#.#", "#..#.", ".##.#"}, // &
	{"..#..", "..#..", ".....", ".....", ".....", ".....", "....."}, // '
	{"...#.", "..#..", ".#...", ".#...", ".#...", "..#..", "...#."}, // (
	{".#...", "..#..", "...#.", "...#.", "...#.", "..#..", ".#..."}, // )
	{".....", "#.#.#", ".###.", "#####", ".###.", "#.#.#", "....."}, // *
	{".....", "..#..", "..#..", "#####", "..#..", "..#..", "....."}, // +
	{".....", ".....", ".....", ".....", "..#..", "..#..", ".#..."}, // ,
	{".....", ".....", ".....", "#####", ".....", ".....", "....."}, // -
	{".....", ".....", ".....", ".....", ".....", ".....", "..#.."}, // .
	{".....", "....#", "...#.", "..#..", ".#...", "#....", "....."}, // /
	{".###.", "#...#", "#..##", "#.#.#", "##..#", "#...#", ".###."}, // 0
	{"..#..", ".##..", "#.#..", "..#..", "..#..", "..#..", "#####"}, // 1
	{".###.", "#...#", "....#", "...#.", "..#..", ".#...", "#####"}, // 2
	{".###.", "#...#", "....#", "..##.", "....#", "#...#", ".###."}, // 3
	{"..##.", ".#.#.", "#..#.", "#####", "...#.", "...#.", "...#."}, // 4
	{"#####", "#....", "#....", "####.", "....#", "....#", "####."}, // 5
	{".###.", "#....", "#....", "####.", "#...#", "#...#", ".###."}, // 6
	{"#####", "....#", "...#.", "..#..", ".#...", ".#...", ".#..."}, // 7
	{".###.", "#...#", "#...#", ".###.", "#...#", "#...#", ".###."}, // 8
	{".###.", "#...#", "#...#", ".####", "....#", "....#", ".###."}, // 9
	{".....", "..#..", ".....", ".....", ".....", "..#..", "....."}, // :
	{".....", "..#..", ".....", ".....", "..#..", "..#..", ".#..."}, // ;
	{".....", "...#.", "..#..", ".#...", "..#..", "...#.", "....."}, // <
	{".....", ".....", "#####", ".....", "#####", ".....", "....."}, // =
	{".....", ".#...", "..#..", "...#.", "..#..", ".#...", "....."}, // >
	{".###.", "#...#", "#...#", "...#.", "..#..", ".....", "..#.."}, // ?
	{".###.", "#...#", "#.###", "#.#.#", "#.###", "#....", ".###."}, // @
	{".###.", "#...#", "#...#", "#####", "#...#", "#...#", "#...#"}, // A
	{"####.", "#...#", "#...#", "####.", "#...#", "#...#", "####."}, // B
	{".###.", "#...#", "#....", "#....", "#....", "#...#", ".###."}, // C
	{"####.", "#...#", "#...#", "#...#", "#...#", "#...#", "####."}, // D
	{"#####", "#....", "#....", "####.", "#....", "#....", "#####"}, // E
	{"#####", "#....", "#....", "####.", "#....", "#....", "#...."}, // F
	{".###.", "#...#", "#....", "#....", "#..##", "#...#", ".###."}, // G
	{"#...#", "#...#", "#...#", "#####", "#...#", "#...#", "#...#"}, // H
	{"#####", "..#..", "..#..", "..#..", "..#..", "..#..", "#####"}, // I
	{"#####", "....#", "....#", "....#", "....#", "#...#", ".###."}, // J
	{"#...#", "#...#", "#..#.", "###..", "#..#.", "#...#", "#...#"}, // K
	{"#....", "#....", "#....", "#....", "#....", "#....", "#####"}, // L
	{"#...#", "##.##", "#.#.#", "#...#", "#...#", "#...#", "#...#"}, // M
	{"#...#", "#...#", "##..#", "#.#.#", "#..##", "#...#", "#...#"}, // N
	{".###.", "#...#", "#...#", "#...#", "#...#", "#...#", ".###."}, // O
	{"####.", "#...#", "#...#", "####.", "#....", "#....", "#...."}, // P
	{".###.", "#...#", "#...#", "#...#", "#.#.#", "#..#.", ".##.#"}, // Q
	{"####.", "#...#", "#...#", "####.", "#...#", "#...#", "#...#"}, // R
	{".####", "#....", "#....", ".###.", "....#", "....#", "####."}, // S
	{"#####", "..#..", "..#..", "..#..", "..#..", "..#..", "..#.."}, // T
	{"#...#", "#...#", "#...#", "#...#", "#...#", "#...#", ".###."}, // U
	{"#...#", "#...#", "#...#", "#...#", "#...#", ".#.#.", "..#.."}, // V
	{"#...#", "#...#", "#...#", "#...#", "#.#.#", "##.##", "#...#"}, // W
	{"#...#", "#...#", ".#.#.", "..#..", ".#.#.", "#...#", "#...#"}, // X
	{"#...#", "#...#", ".#.#.", "..#..", "..#..", "..#..", "..#.."}, // Y
	{"#####", "....#", "...#.", "..#..", ".#...", "#....", "#####"}, // Z
	{"..##.", "..#..", "..#..", "..#..", "..#..", "..#..", "..##."}, // [
	{".....", "#....", ".#...", "..#..", "...#.", "....#", "....."}, // \
	{".##..", "..#..", "..#..", "..#..", "..#..", "..#..", ".##.."}, // ]
	{"..#..", ".#.#.", ".....", ".....", ".....", ".....", "....."}, // ^
	{".....", ".....", ".....", ".....", ".....", ".....", "#####"}, // _
	{".#...", "..#..", ".....", ".....", ".....", ".....", "....."}, // `
	{".....", ".....", ".###.", "....#", ".####", "#...#", ".####"}, // a
	{"#....", "#....", "####.", "#...#", "#...#", "#...#", "####."}, // b
	{".....", ".....", ".###.", "#...#", "#....", "#...#", ".###."}, // c
	{"....#", "....#", ".####", "#...#", "#...#", "#...#", ".####"}, // d
	{".....", ".....", ".###.", "#...#", "#####", "#....", ".####"}, // e
	{"..##.", ".#...", "#####", ".#...", ".#...", ".#...", ".#..."}, // f
	{".....", ".....", ".####", "#...#", ".####", "....#", ".###."}, // g
	{"#....", "#....", "####.", "#...#", "#...#", "#...#", "#...#"}, // h
	{"..#..", ".....", "###..", "..#..", "..#..", "..#..", "#####"}, // i
	{"....#", ".....", "..###", "....#", "....#", "#...#", ".###."}, // j
	{"#....", "#....", "#..#.", "###..", "#..#.", "#...#", "#...#"}, // k
	{"#....", "#....", "#....", "#....", "#....", "#....", ".###."}, // l
	{".....", ".....", "##.#.", "#.#.#", "#.#.#", "#...#", "#...#"}, // m
	{".....", ".....", "####.", "#...#", "#...#", "#...#", "#...#"}, // n
	{".....", ".....", ".###.", "#...#", "#...#", "#...#", ".###."}, // o
	{".....", ".....", "####.", "#...#", "####.", "#....", "#...."}, // p
	{".....", ".....", ".####", "#...#", ".####", "....#", "....#"}, // q
	{".....", ".....", "#.##.", "##..#", "#....", "#....", "#...."}, // r
	{".....", ".....", ".####", "#....", ".###.", "....#", "####."}, // s
	{".#...", ".#...", "####.", ".#...", ".#...", ".#..#", "..##."}, // t
	{".....", ".....", "#...#", "#...#", "#...#", "#...#", ".####"}, // u
	{".....", ".....", "#...#", "#...#", "#...#", ".#.#.", "..#.."}, // v
	{".....", ".....", "#...#", "#...#", "#...#", "#.#.#", ".#.#."}, // w
	{".....", ".....", "#...#", ".#.#.", "..#..", ".#.#.", "#...#"}, // x
	{".....", ".....", "#...#", "#...#", ".####", "....#", ".###."}, // y
	{".....", ".....", "#####", "...#.", "..#..", ".#...", "#####"}, // z
	{"...#.", "..#..", "..#..", ".#...", "..#..", "..#..", "...#."}, // {
	{"..#..", "..#..", "..#..", "..#..", "..#..", "..#..", "..#.."}, // |
	{".#...", "..#..", "..#..", "...#.", "..#..", "..#..", ".#..."}, // }
	{".....", ".....", ".#..#", "#.##.", ".....", ".....", "....."}, // ~
}
