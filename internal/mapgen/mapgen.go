// Package mapgen renders a session's visits as a self-contained Leaflet
// HTML document: one colored marker per city with a popup, a circular year
// badge, switchable tile layers, a title box, and a timeline legend.
package mapgen

import (
	"fmt"
	"html/template"
	"io"
	"os"
	"strings"
	"time"

	"github.com/couchcryptid/footprint-map/internal/domain"
)

// colorHex maps the marker palette to CSS hex colors. Several palette
// names (lightred, darkpurple) are not CSS color names, so every entry is
// resolved here.
var colorHex = map[string]string{
	"red":        "#d63e2a",
	"blue":       "#38aadd",
	"green":      "#72b026",
	"purple":     "#d252b9",
	"orange":     "#f69730",
	"darkred":    "#a23336",
	"lightred":   "#ff8e7f",
	"beige":      "#ffcb92",
	"darkblue":   "#0067a3",
	"darkgreen":  "#728224",
	"cadetblue":  "#436978",
	"darkpurple": "#5b396b",
	"white":      "#fbfbfb",
	"pink":       "#ff91ea",
	"lightblue":  "#8adaff",
	"lightgreen": "#bbf970",
}

type marker struct {
	Name    string
	Lat     float64
	Lon     float64
	LatLng  template.JS // preformatted "[lat, lon]" pair for Leaflet calls
	Color   string
	Hex     string
	Note    string
	Display string
	Year    int
	Badge   string // last two digits of the visit year
	Popup   template.HTML
}

type pageData struct {
	UserName  string
	CreatedAt string
	Count     int
	Markers   []marker
}

// WriteFile renders the map document to path.
func WriteFile(path, userName string, visits []domain.CityVisit, createdAt time.Time) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create map file: %w", err)
	}
	defer f.Close()

	if err := Render(f, userName, visits, createdAt); err != nil {
		return err
	}
	return f.Close()
}

// Render writes the map document for the given visits.
func Render(w io.Writer, userName string, visits []domain.CityVisit, createdAt time.Time) error {
	data := pageData{
		UserName:  userName,
		CreatedAt: createdAt.Format("2006-01-02 15:04:05"),
		Count:     len(visits),
		Markers:   make([]marker, 0, len(visits)),
	}

	for _, v := range visits {
		hex, ok := colorHex[v.Color]
		if !ok {
			hex = colorHex[domain.DefaultColor]
		}

		m := marker{
			Name:    v.Name,
			Lat:     v.Latitude,
			Lon:     v.Longitude,
			LatLng:  template.JS(fmt.Sprintf("[%v, %v]", v.Latitude, v.Longitude)),
			Color:   v.Color,
			Hex:     hex,
			Note:    v.Note,
			Display: v.Visit.Display,
			Year:    v.Visit.Year,
			Badge:   fmt.Sprintf("%02d", v.Visit.Year%100),
		}

		var popup strings.Builder
		if err := popupTmpl.Execute(&popup, struct {
			marker
			UserName string
		}{m, userName}); err != nil {
			return fmt.Errorf("render popup: %w", err)
		}
		m.Popup = template.HTML(popup.String()) //nolint:gosec // built by popupTmpl, fields escaped there

		data.Markers = append(data.Markers, m)
	}

	if err := pageTmpl.Execute(w, data); err != nil {
		return fmt.Errorf("render map: %w", err)
	}
	return nil
}

var popupTmpl = template.Must(template.New("popup").Parse(`<div style="width:250px">
  <div style="background:{{.Hex}};padding:8px;border-radius:5px;margin-bottom:10px">
    <h3 style="color:white;margin:0;font-size:16px">{{.Name}}</h3>
  </div>
  <p><b>Visit time:</b><br>{{.Display}}</p>
  <p><b>Coordinates:</b><br>{{printf "%.4f" .Lat}}, {{printf "%.4f" .Lon}}</p>
  <p><b>User:</b><br>{{.UserName}}</p>
  <div style="background:#f5f5f5;padding:8px;border-radius:3px">
    <p style="margin:0;font-size:12px"><b>Note:</b><br>{{if .Note}}{{.Note}}{{else}}No note{{end}}</p>
  </div>
</div>`))

var pageTmpl = template.Must(template.New("page").Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>{{.UserName}}'s Footprint Map</title>
<meta name="viewport" content="width=device-width, initial-scale=1.0">
<link rel="stylesheet" href="https://unpkg.com/leaflet@1.9.4/dist/leaflet.css">
<script src="https://unpkg.com/leaflet@1.9.4/dist/leaflet.js"></script>
<style>
  html, body, #map { height: 100%; margin: 0; }
  .overlay-box {
    position: fixed; z-index: 1000; background: white; padding: 10px;
    border-radius: 5px; box-shadow: 0 2px 6px rgba(0,0,0,0.3);
    font-family: Arial, sans-serif;
  }
  .year-badge {
    width: 40px; height: 40px; border-radius: 50%; border: 2px solid white;
    box-shadow: 0 2px 5px rgba(0,0,0,0.3); display: flex;
    align-items: center; justify-content: center; color: white;
    font-weight: bold; font-family: Arial, sans-serif;
  }
</style>
</head>
<body>
<div id="map"></div>
<div class="overlay-box" style="top:10px;left:50px">
  <h3 style="margin:0;color:#333">{{.UserName}}'s Footprint Map</h3>
  <p style="margin:5px 0 0 0;color:#666;font-size:12px">
    Marked {{.Count}} cities &bull; Created: {{.CreatedAt}}
  </p>
</div>
<div class="overlay-box" style="bottom:50px;right:50px;font-size:12px">
  <h4 style="margin:0 0 10px 0;color:#333">Timeline Legend</h4>
  <span>Number inside a circle shows the last two digits of the visit year</span>
</div>
<script>
var map = L.map('map', { center: [0, 180], zoom: 2 });

var baseLayers = {
  "OpenStreetMap": L.tileLayer('https://tile.openstreetmap.org/{z}/{x}/{y}.png', {
    attribution: 'Map data &copy; OpenStreetMap contributors'
  }),
  "Satellite Image": L.tileLayer('https://server.arcgisonline.com/ArcGIS/rest/services/World_Imagery/MapServer/tile/{z}/{y}/{x}', {
    attribution: 'Tiles &copy; Esri'
  }),
  "Topographic Map": L.tileLayer('https://server.arcgisonline.com/ArcGIS/rest/services/World_Topo_Map/MapServer/tile/{z}/{y}/{x}', {
    attribution: 'Tiles &copy; Esri'
  }),
  "Dark Theme": L.tileLayer('https://{s}.basemaps.cartocdn.com/dark_all/{z}/{x}/{y}.png', {
    attribution: '&copy; CARTO'
  })
};
baseLayers["OpenStreetMap"].addTo(map);
L.control.layers(baseLayers).addTo(map);
L.control.scale().addTo(map);

{{range .Markers}}
L.circleMarker({{.LatLng}}, {
  radius: 9, color: 'white', weight: 2,
  fillColor: {{.Hex}}, fillOpacity: 0.9
}).bindPopup({{.Popup}}, { maxWidth: 300 })
  .bindTooltip({{printf "%s (%s)" .Name .Display}})
  .addTo(map);
L.marker({{.LatLng}}, {
  icon: L.divIcon({
    html: {{printf "<div class=\"year-badge\" style=\"background:%s\">%s</div>" .Hex .Badge}},
    className: '', iconSize: [40, 40], iconAnchor: [20, -4]
  }),
  interactive: false
}).addTo(map);
{{end}}
</script>
</body>
</html>
`))
