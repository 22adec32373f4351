package mcpserver

// RecordFormatContract describes the canonical JSON record formats that
// LLM consumers should follow when creating grocery or wireframe records.
const RecordFormatContract = `# DokoNepal Record Format Contract

Records are JSON objects. Server-assigned fields (id, date_added,
date_created, date_updated) MUST be omitted on create.

## Grocery item

` + "```" + `json
{
  "name": "Organic Basmati Rice",
  "category": "Grains",
  "price": 850,
  "quantity": 25,
  "unit": "kg",
  "supplier": "Nepal Organic Foods",
  "description": "Premium quality organic basmati rice",
  "image": "https://example.com/rice.jpg"
}
` + "```" + `

## Rules

1. **name and category are required.** Categories in use: Grains, Dairy,
   Fruits, Vegetables, Spices, Meat, Others.
2. **price** is a non-negative number in NPR. **quantity** is a
   non-negative integer; items below 5 are flagged as low stock.
3. **unit** is free text (kg, ltr, pcs).

## Wireframe record

` + "```" + `json
{
  "project_name": "E-commerce Mobile App",
  "template_type": "Mobile App",
  "pages": 8,
  "complexity": "Complex",
  "priority": "High",
  "deadline": "2025-08-15",
  "features": "User authentication, product catalog, shopping cart",
  "status": "Planning"
}
` + "```" + `

## Rules

1. **project_name and template_type are required.** **pages** must be at
   least 1.
2. **complexity** is one of Simple, Medium, Complex. **priority** is one
   of High, Medium, Low.
3. **deadline** is a bare YYYY-MM-DD date; deadlines within the next 7
   days count as upcoming.
4. **status** defaults to Planning when omitted.
`
