package ui

// Static screen generators. These are one-shot string templates with no state
// of their own; only the inventory screen renders from live data.

const (
	ScreenInventory = "inventory"
	ScreenCharacter = "character-sheet"
	ScreenQuests    = "quests"
	ScreenMap       = "map"
	ScreenSettings  = "settings"
)

func knownScreen(id string) bool {
	switch id {
	case ScreenInventory, ScreenCharacter, ScreenQuests, ScreenMap, ScreenSettings:
		return true
	}
	return false
}

func generateCharacterContent() string {
	return `<div class="screen-content character-screen">
<h4>Character Stats</h4>
<div class="character-stats">
<div class="stat-row"><span class="stat-name">Strength:</span><span class="stat-value">15</span></div>
<div class="stat-row"><span class="stat-name">Dexterity:</span><span class="stat-value">12</span></div>
<div class="stat-row"><span class="stat-name">Intelligence:</span><span class="stat-value">14</span></div>
<div class="stat-row"><span class="stat-name">Vitality:</span><span class="stat-value">13</span></div>
</div>
<div class="character-equipment">
<h5>Equipment</h5>
<div class="equipment-slot">Weapon: Iron Sword</div>
<div class="equipment-slot">Armor: Leather Vest</div>
<div class="equipment-slot">Ring: None</div>
</div>
</div>`
}

func generateQuestContent() string {
	return `<div class="screen-content quest-screen">
<h4>Quest Journal</h4>
<div class="quest-list">
<div class="quest-item active">
<h5>Find the Ancient Artifact</h5>
<p>Search the abandoned mines for the lost artifact.</p>
<span class="quest-status">In Progress</span>
</div>
<div class="quest-item">
<h5>Gather 10 Iron Ore</h5>
<p>Mine iron ore from the mountain caves.</p>
<span class="quest-status">Completed</span>
</div>
</div>
</div>`
}

func generateMapContent() string {
	return `<div class="screen-content map-screen">
<h4>World Map</h4>
<div class="map-display">
<div class="map-legend">
<div class="legend-item">@ = Player</div>
<div class="legend-item"># = Wall</div>
<div class="legend-item">. = Floor</div>
</div>
<div class="ascii-map">############<br>#..........#<br>#....@.....#<br>#..........#<br>############</div>
</div>
</div>`
}

func generateSettingsContent() string {
	return `<div class="screen-content settings-screen">
<h4>Settings</h4>
<div class="settings-options">
<div class="setting-item"><label>Sound Volume:</label><input type="range" min="0" max="100" value="50"></div>
<div class="setting-item"><label>Auto-save:</label><input type="checkbox" checked></div>
</div>
</div>`
}
