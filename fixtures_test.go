package ae7q

// Trimmed copies of ae7q.com query pages.

const callPage = `<!DOCTYPE html>
<html>
<head><title>AE7Q KN8U</title></head>
<body>
<table class="Layout"><tr><td>Menu</td><td>Search</td></tr></table>
<table class="Database">
	<tr><th>Conditions apply to this license</th></tr>
</table>
<table class="Database">
	<tr>
		<th>Entity Name</th><th>Applicant Type</th><th>Operator Class</th>
		<th>Region/State</th><th>License Status</th><th>Grant Date</th>
		<th>Effective Date</th><th>Cancel Date</th><th>Expire Date</th>
	</tr>
	<tr>
		<td>DOE, JOHN</td><td>Individual</td><td>General</td>
		<td>8 / OH</td><td>Expired</td><td>2015-06-01</td>
		<td>2015-06-01</td><td>(none)</td><td>2025-06-01</td>
	</tr>
	<tr>
		<td>"</td><td>"</td><td>Extra</td>
		<td>"</td><td>Active</td><td>2019-12-24</td>
		<td>2019-12-24</td><td>(none)</td><td>2029-12-24</td>
	</tr>
</table>
<table class="Database">
	<tr>
		<th>Receipt Date</th><th>Application Callsign</th><th>Region/State</th>
		<th>Entity Name</th><th>ULS File Number</th><th>Application Purpose</th>
		<th>Payment Date</th><th>Last Action Date</th><th>Application Status</th>
	</tr>
	<tr>
		<td>2019-12-20</td><td>KN8U</td><td>OH</td>
		<td>DOE, JOHN</td><td>0008963527 (Online)</td><td>Modification</td>
		<td>(none)</td><td>2019-12-24</td><td>Granted</td>
	</tr>
</table>
</body>
</html>`

const brokenCallPage = `<html><body>
<table class="Database"><tr><td>"</td><td>x</td></tr></table>
<table class="Database">
	<tr><th>Start Date</th><th>End Date</th><th>Callsign</th><th>Entity Name</th><th>Event Name</th></tr>
	<tr><td>2020-01-01</td><td>2020-01-02</td></tr>
</table>
<table class="Database">
	<tr><th>Conditions apply to this license</th></tr>
</table>
</body></html>`

const canadianPage = `<html><body>
<table class="Database">
	<tr><th colspan="2">Callsign data</th></tr>
	<tr><td>Callsign</td><td>VA2SHF</td></tr>
	<tr><td>Given Names</td><td>Jean</td></tr>
	<tr><td>Surname</td><td>Tremblay</td></tr>
	<tr><td>Locality</td><td>Québec</td></tr>
	<tr><td>Province</td><td>QC</td></tr>
	<tr><td>Maidenhead</td><td>FN46</td></tr>
	<tr><td>Callsign</td><td>VA2XXX</td></tr>
</table>
</body></html>`

const frnPage = `<html><body>
<table class="Database">
	<tr><th>Licenses for FRN 0016605636</th></tr>
	<tr>
		<th>Callsign</th><th>Region/State</th><th>Entity Name</th><th>Applicant Type</th>
		<th>Operator Class</th><th>License Status</th><th>Grant Date</th>
		<th>Effective Date</th><th>Cancel Date</th><th>Expire Date</th>
	</tr>
	<tr>
		<td>KN8U</td><td>OH</td><td>DOE, JOHN</td><td>Individual</td>
		<td>Extra</td><td>Active</td><td>2019-12-24</td>
		<td>2019-12-24</td><td>(none)</td><td>2029-12-24</td>
	</tr>
</table>
<table class="Database">
	<tr>
		<th>Receipt Date</th><th>Application Callsign</th><th>Region/State</th>
		<th>Operator Class</th><th>ULS File Number</th><th>Application Purpose</th>
		<th>Payment Date</th><th>Last Action Date</th><th>Application Status</th>
		<th>Vanity callsign(s) applied for</th>
	</tr>
	<tr>
		<td rowspan="2">2020-06-08</td><td rowspan="2">KN8U</td><td rowspan="2">OH</td>
		<td rowspan="2">E</td><td rowspan="2">0008963527 (Online)</td><td rowspan="2">Vanity</td>
		<td rowspan="2">2020-06-08</td><td rowspan="2">2020-07-01</td><td rowspan="2">Granted</td>
		<td>W8A</td>
	</tr>
	<tr><td>W8B</td></tr>
	<tr>
		<td>2021-01-04</td><td>KN8U</td><td>OH</td>
		<td>E</td><td>0009000001 (Manual)</td><td>Vanity</td>
		<td>(none)</td><td>2021-01-04</td><td>Pending</td>
		<td>N8Z</td>
	</tr>
</table>
</body></html>`

const applicationPage = `<html><body>
<table class="Database">
	<tr><th>Field Name</th><th>Application 0008963527</th></tr>
	<tr><th>Field</th><th>Value</th></tr>
	<tr><td>FRN</td><td>0016605636</td></tr>
	<tr><td>Entity Name</td><td>DOE, JOHN</td></tr>
	<tr><td>Zip Location</td><td>43210</td></tr>
	<tr><td>Zip Location</td><td>Columbus</td></tr>
	<tr><td>Zip Location</td><td>ignored</td></tr>
	<tr><td>Receipt Date</td><td>2020-06-08</td></tr>
	<tr><td>New Seq Callsign</td><td>N</td></tr>
	<tr><td>Is From Vec</td><td>N</td></tr>
	<tr><td>Is Trustee</td><td>Y</td></tr>
	<tr><td>FRN</td><td>duplicate</td></tr>
</table>
<table class="Database">
	<tr><th>Action Date</th><th>Action Type</th></tr>
	<tr><td>2020-06-08</td><td>Received</td></tr>
	<tr><td>2020-07-01</td><td>Granted</td></tr>
</table>
<table class="Database">
	<tr><th>Seq</th><th>Vanity Callsign</th><th>Prediction</th></tr>
	<tr><td>1</td><td>W8A</td><td>Assignment</td></tr>
	<tr><td>2</td><td>W8B</td><td>Unneeded</td></tr>
</table>
</body></html>`
