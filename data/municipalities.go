package data

// Municipality backs the Aargau municipality autocomplete on the item form.
type Municipality struct {
	ID       int      `json:"id"`
	Name     string   `json:"name"`
	ZipCodes []string `json:"zip_codes"`
}

var Municipalities = []Municipality{
	{ID: 1, Name: "Aarau", ZipCodes: []string{"5000", "5004"}},
	{ID: 2, Name: "Baden", ZipCodes: []string{"5400", "5404", "5405"}},
	{ID: 3, Name: "Brugg", ZipCodes: []string{"5200", "5201"}},
	{ID: 4, Name: "Lenzburg", ZipCodes: []string{"5600"}},
	{ID: 5, Name: "Rheinfelden", ZipCodes: []string{"4310"}},
	{ID: 6, Name: "Wettingen", ZipCodes: []string{"5430"}},
	{ID: 7, Name: "Wohlen", ZipCodes: []string{"5610"}},
	{ID: 8, Name: "Zofingen", ZipCodes: []string{"4800"}},
	{ID: 9, Name: "Muri", ZipCodes: []string{"5630"}},
	{ID: 10, Name: "Bremgarten", ZipCodes: []string{"5620"}},
	{ID: 11, Name: "Oftringen", ZipCodes: []string{"4665"}},
	{ID: 12, Name: "Suhr", ZipCodes: []string{"5034"}},
}
